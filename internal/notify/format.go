package notify

import (
	"fmt"
	"strings"

	"github-slack-bridge/internal/model"
	"github-slack-bridge/pkg/slack"
)

func buildPushMessage(event model.PushEvent, branch, channel string) slack.Message {
	actor := event.Commits[0].Author.Name
	if actor == "" {
		actor = event.Sender.Login
	}

	noun := "commit"
	if len(event.Commits) > 1 {
		noun = "commits"
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":rocket: %s pushed %d %s to <%s/tree/%s|%s:%s> (<%s|compare>)",
		actor, len(event.Commits), noun,
		event.Repository.HTMLURL, branch, event.Repository.FullName, branch,
		event.Compare)

	for _, commit := range event.Commits {
		fmt.Fprintf(&b, "\n• `%s`: %s", shortSHA(commit.ID), firstLine(commit.Message))
	}

	return slack.Message{
		Text:     b.String(),
		Username: actor,
		Channel:  channel,
	}
}

func buildPullRequestMessage(event model.PullRequestEvent, channel string) slack.Message {
	pr := event.PullRequest
	emoji, verb := pullRequestTone(event.Action, pr.Merged)

	text := fmt.Sprintf("%s Pull Request %s: <%s|#%d %s> by %s in <%s|%s>",
		emoji, verb,
		pr.HTMLURL, pr.Number, pr.Title, pr.User.Login,
		event.Repository.HTMLURL, event.Repository.FullName)

	return slack.Message{
		Text:     text,
		Username: pr.User.Login,
		Channel:  channel,
	}
}

// pullRequestTone picks the emoji and verb for a pull_request notification.
// A merged close reads as "merged", not "closed".
func pullRequestTone(action string, merged bool) (string, string) {
	switch {
	case action == "opened":
		return ":pr-open:", "opened"
	case action == "reopened":
		return ":pr-open:", "reopened"
	case merged:
		return ":pr-merged:", "merged"
	case action == "closed":
		return ":pr-closed:", "closed"
	default:
		return ":info:", action
	}
}

func buildBuildFailedMessage(event model.WorkflowRunEvent, again bool, channel string) slack.Message {
	qualifier := ""
	if again {
		qualifier = " again"
	}
	return buildRunMessage(event, ":x: build failed"+qualifier, channel)
}

func buildBuildFixedMessage(event model.WorkflowRunEvent, channel string) slack.Message {
	return buildRunMessage(event, ":white_check_mark: build fixed", channel)
}

func buildRunMessage(event model.WorkflowRunEvent, headline, channel string) slack.Message {
	run := event.WorkflowRun
	repo := event.Repository

	text := fmt.Sprintf("%s: <%s|%s #%d> in <%s/tree/%s|%s:%s> (<%s/commit/%s|%s>) by %s",
		headline,
		run.HTMLURL, run.Name, run.RunNumber,
		repo.HTMLURL, run.HeadBranch, repo.FullName, run.HeadBranch,
		repo.HTMLURL, run.HeadSHA, shortSHA(run.HeadSHA),
		run.Actor.Login)

	return slack.Message{
		Text:     text,
		Username: run.Actor.Login,
		Channel:  channel,
	}
}

// shortSHA returns the 7-character display form of a commit id.
func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// firstLine truncates a commit message to its subject line.
func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimRight(line, "\r")
}
