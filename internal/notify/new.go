package notify

import (
	"time"

	"github-slack-bridge/internal/tracker"
	pkgLog "github-slack-bridge/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	security *SecurityValidator
	tracker  *tracker.Tracker
	sender   Sender
	branches map[string]struct{}
	now      func() time.Time
}

var _ UseCase = (*usecase)(nil)

// New creates the webhook-processing use case.
func New(l pkgLog.Logger, cfg Config, tr *tracker.Tracker, sender Sender) *usecase {
	branches := make(map[string]struct{}, len(cfg.Branches))
	for _, b := range cfg.Branches {
		branches[b] = struct{}{}
	}

	return &usecase{
		l:        l,
		security: NewSecurityValidator(cfg.Secret),
		tracker:  tr,
		sender:   sender,
		branches: branches,
		now:      time.Now,
	}
}

func (u *usecase) branchAllowed(branch string) bool {
	_, ok := u.branches[branch]
	return ok
}
