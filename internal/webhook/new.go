package webhook

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github-slack-bridge/internal/notify"
	pkgLog "github-slack-bridge/pkg/log"
)

// Handler is the HTTP boundary for GitHub webhook deliveries.
type Handler struct {
	uc notify.UseCase
	l  pkgLog.Logger

	// seen remembers recent delivery GUIDs so GitHub redeliveries don't
	// double-post. A check-then-add race just means a rare duplicate, which
	// is the pre-dedup behavior anyway.
	seen *expirable.LRU[string, struct{}]
}

// NewHandler creates the webhook boundary. dedupTTL bounds how long a
// delivery GUID is remembered.
func NewHandler(l pkgLog.Logger, uc notify.UseCase, dedupTTL time.Duration) *Handler {
	return &Handler{
		uc:   uc,
		l:    l,
		seen: expirable.NewLRU[string, struct{}](1024, nil, dedupTTL),
	}
}
