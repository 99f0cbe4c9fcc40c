package slack

// Defaults applied to every message unless the caller overrides them.
const (
	DefaultUsername  = "bottie"
	DefaultIconEmoji = ":rocket:"
)

// Message is the payload posted to a Slack incoming webhook.
type Message struct {
	Text      string `json:"text"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
	IconURL   string `json:"icon_url,omitempty"`
	Channel   string `json:"channel,omitempty"`
}
