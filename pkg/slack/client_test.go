package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github-slack-bridge/pkg/slack"
)

func TestClientSend(t *testing.T) {
	var received map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if text, _ := received["text"].(string); text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("channel_not_found"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client := slack.NewClient("https://hooks.slack.com/services/placeholder")
	client.SetWebhookURL(ts.URL) // Route posts to the test server

	t.Run("send success with defaults", func(t *testing.T) {
		err := client.Send(context.Background(), slack.Message{Text: "build fixed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if received["username"] != slack.DefaultUsername {
			t.Errorf("expected default username %q, got %v", slack.DefaultUsername, received["username"])
		}
		if received["icon_emoji"] != slack.DefaultIconEmoji {
			t.Errorf("expected default icon %q, got %v", slack.DefaultIconEmoji, received["icon_emoji"])
		}
	})

	t.Run("explicit fields are kept", func(t *testing.T) {
		err := client.Send(context.Background(), slack.Message{
			Text:     "pushed 2 commits",
			Username: "ann",
			Channel:  "#deploys",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if received["username"] != "ann" {
			t.Errorf("expected username ann, got %v", received["username"])
		}
		if received["channel"] != "#deploys" {
			t.Errorf("expected channel #deploys, got %v", received["channel"])
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		err := client.Send(context.Background(), slack.Message{Text: "cause_500"})
		if err == nil || !strings.Contains(err.Error(), "channel_not_found") {
			t.Fatalf("expected webhook error with body, got: %v", err)
		}
	})
}
