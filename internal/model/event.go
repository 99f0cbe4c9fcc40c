package model

import (
	"strings"
	"time"
)

// GitHub event types handled by the bridge. Anything else is ignored.
const (
	EventPush        = "push"
	EventPullRequest = "pull_request"
	EventWorkflowRun = "workflow_run"
)

// Workflow run status/conclusion values the bridge reacts to.
const (
	RunStatusCompleted   = "completed"
	RunConclusionSuccess = "success"
	RunConclusionFailure = "failure"
)

// Repository identifies the repo an event belongs to.
type Repository struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

// Sender is the GitHub account that triggered the event.
type Sender struct {
	Login string `json:"login"`
}

// CommitAuthor is the author block on a push commit.
type CommitAuthor struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// Commit is a single commit in a push event, in chronological order.
type Commit struct {
	ID      string       `json:"id"`
	Message string       `json:"message"`
	URL     string       `json:"url"`
	Author  CommitAuthor `json:"author"`
}

// PushEvent is the payload of a GitHub push webhook.
type PushEvent struct {
	Ref        string     `json:"ref"`
	Commits    []Commit   `json:"commits"`
	Repository Repository `json:"repository"`
	Sender     Sender     `json:"sender"`
	Compare    string     `json:"compare"`
}

// Branch returns the ref with the refs/heads/ prefix stripped.
func (e PushEvent) Branch() string {
	return strings.TrimPrefix(e.Ref, "refs/heads/")
}

// PullRequest is the pull_request block of a pull_request event.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	Merged  bool   `json:"merged"`
	User    Sender `json:"user"`
}

// PullRequestEvent is the payload of a GitHub pull_request webhook.
type PullRequestEvent struct {
	Action      string      `json:"action"`
	PullRequest PullRequest `json:"pull_request"`
	Repository  Repository  `json:"repository"`
	Sender      Sender      `json:"sender"`
}

// WorkflowRun is the workflow_run block of a workflow_run event.
type WorkflowRun struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
	WorkflowID int64     `json:"workflow_id"`
	HeadBranch string    `json:"head_branch"`
	HeadSHA    string    `json:"head_sha"`
	RunNumber  int       `json:"run_number"`
	Actor      Sender    `json:"actor"`
}

// WorkflowRunEvent is the payload of a GitHub workflow_run webhook.
type WorkflowRunEvent struct {
	Action      string      `json:"action"`
	WorkflowRun WorkflowRun `json:"workflow_run"`
	Repository  Repository  `json:"repository"`
	Sender      Sender      `json:"sender"`
}
