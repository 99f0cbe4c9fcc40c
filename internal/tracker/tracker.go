package tracker

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Tracker keeps the in-memory set of currently failing builds. State lives
// only for the process lifetime; a restart starts clean.
//
// Every operation is atomic under one mutex: the presence check feeding the
// "failed again" wording and the remove feeding the "build fixed" decision
// must not race with a concurrent delivery for the same key.
type Tracker struct {
	mu        sync.Mutex
	failing   map[string]FailureRecord
	retention time.Duration
}

// New creates an empty tracker. Records older than retention are evicted.
func New(retention time.Duration) *Tracker {
	return &Tracker{
		failing:   make(map[string]FailureRecord),
		retention: retention,
	}
}

// Retention returns the configured retention window.
func (t *Tracker) Retention() time.Duration {
	return t.retention
}

// MarkFailure records a failed run, replacing any previous record for the
// same key. It reports whether the key was already failing.
func (t *Tracker) MarkFailure(key string, rec FailureRecord) (again bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, again = t.failing[key]
	t.failing[key] = rec
	return again
}

// Resolve removes the record for key and returns it if one existed.
func (t *Tracker) Resolve(key string) (FailureRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.failing[key]
	if ok {
		delete(t.failing, key)
	}
	return rec, ok
}

// Evict drops every record older than the retention window.
func (t *Tracker) Evict(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.evictLocked(now)
}

func (t *Tracker) evictLocked(now time.Time) {
	for key, rec := range t.failing {
		if now.Sub(rec.FailedAt) > t.retention {
			delete(t.failing, key)
		}
	}
}

// Snapshot evicts expired records and returns the remaining failing builds,
// most recent failure first, plus aggregate counts.
func (t *Tracker) Snapshot(now time.Time) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.evictLocked(now)

	status := Status{
		ByBranch:      make(map[string]int),
		RetentionDays: int(t.retention.Hours() / 24),
		Builds:        make([]FailingBuild, 0, len(t.failing)),
	}

	for key, rec := range t.failing {
		workflowID, branch := splitKey(key)
		status.Builds = append(status.Builds, FailingBuild{
			WorkflowID:   workflowID,
			Branch:       branch,
			WorkflowName: rec.WorkflowName,
			Repository:   rec.Repository,
			HTMLURL:      rec.HTMLURL,
			FailedAt:     rec.FailedAt,
			FailedFor:    formatDuration(now.Sub(rec.FailedAt)),
		})
		status.ByBranch[branch]++
	}

	sort.Slice(status.Builds, func(i, j int) bool {
		return status.Builds[i].FailedAt.After(status.Builds[j].FailedAt)
	})
	status.TotalFailedBuilds = len(status.Builds)

	return status
}

// splitKey reverses Key. Everything after the first colon is the branch.
func splitKey(key string) (int64, string) {
	id, branch, _ := strings.Cut(key, ":")
	workflowID, _ := strconv.ParseInt(id, 10, 64)
	return workflowID, branch
}

// formatDuration renders a failure age as "Nd Nh", "Nh Nm" or "Nm".
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days >= 1:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours >= 1:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
