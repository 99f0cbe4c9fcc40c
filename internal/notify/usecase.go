package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github-slack-bridge/internal/model"
	"github-slack-bridge/internal/tracker"
)

// ProcessWebhook authenticates and classifies one delivery, sending at most
// one chat message. A nil error with a non-notified status is a normal no-op;
// a non-nil error (parse or delivery failure) must surface to the sender.
func (u *usecase) ProcessWebhook(ctx context.Context, input ProcessInput) (ProcessOutput, error) {
	if err := u.security.ValidateSignature(input.Payload, input.Signature); err != nil {
		u.l.Warnf(ctx, "webhook %s: rejecting delivery: %v", input.DeliveryID, err)
		return ProcessOutput{Status: StatusRejected, Reason: "invalid signature"}, nil
	}

	switch input.EventType {
	case model.EventPush:
		return u.handlePush(ctx, input)
	case model.EventPullRequest:
		return u.handlePullRequest(ctx, input)
	case model.EventWorkflowRun:
		return u.handleWorkflowRun(ctx, input)
	default:
		u.l.Infof(ctx, "webhook %s: ignoring unsupported event type %q", input.DeliveryID, input.EventType)
		return ProcessOutput{Status: StatusIgnored, Reason: "unsupported event type"}, nil
	}
}

// GetBuildStatus returns the currently failing builds after evicting expired
// records.
func (u *usecase) GetBuildStatus() tracker.Status {
	return u.tracker.Snapshot(u.now())
}

func (u *usecase) handlePush(ctx context.Context, input ProcessInput) (ProcessOutput, error) {
	var event model.PushEvent
	if err := json.Unmarshal(input.Payload, &event); err != nil {
		return ProcessOutput{}, fmt.Errorf("parse push event: %w", err)
	}

	branch := event.Branch()
	if !u.branchAllowed(branch) {
		u.l.Infof(ctx, "webhook %s: skipping push to branch %q", input.DeliveryID, branch)
		return ProcessOutput{Status: StatusIgnored, Reason: "branch not notified"}, nil
	}
	if len(event.Commits) == 0 {
		u.l.Infof(ctx, "webhook %s: skipping push with no commits", input.DeliveryID)
		return ProcessOutput{Status: StatusIgnored, Reason: "no commits"}, nil
	}

	msg := buildPushMessage(event, branch, input.Channel)
	if err := u.sender.Send(ctx, msg); err != nil {
		return ProcessOutput{}, fmt.Errorf("send push notification: %w", err)
	}

	u.l.Infof(ctx, "webhook %s: notified push of %d commit(s) to %s:%s",
		input.DeliveryID, len(event.Commits), event.Repository.FullName, branch)
	return ProcessOutput{Status: StatusNotified}, nil
}

func (u *usecase) handlePullRequest(ctx context.Context, input ProcessInput) (ProcessOutput, error) {
	var event model.PullRequestEvent
	if err := json.Unmarshal(input.Payload, &event); err != nil {
		return ProcessOutput{}, fmt.Errorf("parse pull_request event: %w", err)
	}

	switch event.Action {
	case "opened", "closed", "reopened":
	default:
		u.l.Infof(ctx, "webhook %s: ignoring pull_request action %q", input.DeliveryID, event.Action)
		return ProcessOutput{Status: StatusIgnored, Reason: "action not notified"}, nil
	}

	msg := buildPullRequestMessage(event, input.Channel)
	if err := u.sender.Send(ctx, msg); err != nil {
		return ProcessOutput{}, fmt.Errorf("send pull_request notification: %w", err)
	}

	u.l.Infof(ctx, "webhook %s: notified pull request #%d %s",
		input.DeliveryID, event.PullRequest.Number, event.Action)
	return ProcessOutput{Status: StatusNotified}, nil
}

func (u *usecase) handleWorkflowRun(ctx context.Context, input ProcessInput) (ProcessOutput, error) {
	var event model.WorkflowRunEvent
	if err := json.Unmarshal(input.Payload, &event); err != nil {
		return ProcessOutput{}, fmt.Errorf("parse workflow_run event: %w", err)
	}

	now := u.now()
	// Every workflow_run delivery doubles as the eviction tick; there is no
	// background timer.
	defer u.tracker.Evict(now)

	run := event.WorkflowRun
	if run.Status != model.RunStatusCompleted {
		u.l.Infof(ctx, "webhook %s: ignoring workflow run with status %q", input.DeliveryID, run.Status)
		return ProcessOutput{Status: StatusSkipped, Reason: "run not completed"}, nil
	}
	if !u.branchAllowed(run.HeadBranch) {
		u.l.Infof(ctx, "webhook %s: skipping workflow run on branch %q", input.DeliveryID, run.HeadBranch)
		return ProcessOutput{Status: StatusIgnored, Reason: "branch not notified"}, nil
	}

	key := tracker.Key(run.WorkflowID, run.HeadBranch)

	switch run.Conclusion {
	case model.RunConclusionFailure:
		// The presence check and the upsert are one atomic operation.
		again := u.tracker.MarkFailure(key, tracker.FailureRecord{
			WorkflowName: run.Name,
			HTMLURL:      run.HTMLURL,
			Repository:   event.Repository.FullName,
			FailedAt:     now,
		})

		msg := buildBuildFailedMessage(event, again, input.Channel)
		if err := u.sender.Send(ctx, msg); err != nil {
			// The tracker already recorded the failure; that is deliberate.
			return ProcessOutput{}, fmt.Errorf("send build failure notification: %w", err)
		}

		u.l.Infof(ctx, "webhook %s: notified failed build %s #%d (again=%v)",
			input.DeliveryID, run.Name, run.RunNumber, again)
		return ProcessOutput{Status: StatusNotified}, nil

	case model.RunConclusionSuccess:
		rec, wasFailing := u.tracker.Resolve(key)
		if !wasFailing {
			u.l.Infof(ctx, "webhook %s: successful run %s #%d was not failing, nothing to report",
				input.DeliveryID, run.Name, run.RunNumber)
			return ProcessOutput{Status: StatusSkipped, Reason: "was not failing"}, nil
		}
		if now.Sub(rec.FailedAt) > u.tracker.Retention() {
			u.l.Infof(ctx, "webhook %s: failure of %s #%d is older than the retention window, not reporting a fix",
				input.DeliveryID, run.Name, run.RunNumber)
			return ProcessOutput{Status: StatusSkipped, Reason: "failure expired"}, nil
		}

		msg := buildBuildFixedMessage(event, input.Channel)
		if err := u.sender.Send(ctx, msg); err != nil {
			return ProcessOutput{}, fmt.Errorf("send build fixed notification: %w", err)
		}

		u.l.Infof(ctx, "webhook %s: notified fixed build %s #%d", input.DeliveryID, run.Name, run.RunNumber)
		return ProcessOutput{Status: StatusNotified}, nil

	default:
		u.l.Infof(ctx, "webhook %s: ignoring workflow run conclusion %q", input.DeliveryID, run.Conclusion)
		return ProcessOutput{Status: StatusSkipped, Reason: "conclusion not notified"}, nil
	}
}
