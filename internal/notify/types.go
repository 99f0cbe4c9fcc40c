package notify

// ProcessInput is one raw webhook delivery as received at the boundary.
type ProcessInput struct {
	EventType  string
	Payload    []byte
	Signature  string
	Channel    string
	DeliveryID string
}

// Status classifies what happened to a delivery. Every path is observable so
// tests can tell a silent auth reject from an uninteresting event.
type Status string

const (
	// StatusRejected means the signature was missing or wrong.
	StatusRejected Status = "rejected"
	// StatusIgnored means the event type, branch or action is not notified on.
	StatusIgnored Status = "ignored"
	// StatusNotified means a message was sent.
	StatusNotified Status = "notified"
	// StatusSkipped means a workflow_run was valid but produced no message.
	StatusSkipped Status = "skipped"
)

// ProcessOutput reports the outcome of one delivery.
type ProcessOutput struct {
	Status Status
	Reason string
}

// Config carries the core's static settings.
type Config struct {
	// Secret signs inbound payloads. Processing is refused without it.
	Secret string
	// Branches is the allow-list of branches worth notifying about.
	Branches []string
}
