package notify

import (
	"context"

	"github-slack-bridge/internal/tracker"
	"github-slack-bridge/pkg/slack"
)

// UseCase processes authenticated GitHub webhook deliveries and exposes the
// build-status snapshot.
type UseCase interface {
	ProcessWebhook(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	GetBuildStatus() tracker.Status
}

// Sender delivers a rendered message to the chat destination.
type Sender interface {
	Send(ctx context.Context, msg slack.Message) error
}
