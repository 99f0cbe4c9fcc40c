package tracker

import (
	"fmt"
	"time"
)

// FailureRecord describes the most recent failed run of one workflow on one
// branch.
type FailureRecord struct {
	WorkflowName string
	HTMLURL      string
	Repository   string
	FailedAt     time.Time
}

// Key builds the tracking key for a workflow on a branch. Workflow IDs are
// numeric, so the first colon always separates the two parts even when the
// branch name itself contains colons.
func Key(workflowID int64, branch string) string {
	return fmt.Sprintf("%d:%s", workflowID, branch)
}

// FailingBuild is one entry of a status snapshot.
type FailingBuild struct {
	WorkflowID   int64     `json:"workflow_id"`
	Branch       string    `json:"branch"`
	WorkflowName string    `json:"workflow_name"`
	Repository   string    `json:"repository"`
	HTMLURL      string    `json:"html_url"`
	FailedAt     time.Time `json:"failed_at"`
	FailedFor    string    `json:"failed_for"`
}

// Status is the read-only snapshot of everything currently failing.
type Status struct {
	TotalFailedBuilds int            `json:"total_failed_builds"`
	ByBranch          map[string]int `json:"by_branch"`
	RetentionDays     int            `json:"retention_days"`
	Builds            []FailingBuild `json:"builds"`
}
