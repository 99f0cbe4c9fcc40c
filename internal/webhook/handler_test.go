package webhook

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github-slack-bridge/internal/notify"
	"github-slack-bridge/internal/tracker"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

type fakeUseCase struct {
	inputs []notify.ProcessInput
	out    notify.ProcessOutput
	err    error
}

func (f *fakeUseCase) ProcessWebhook(_ context.Context, input notify.ProcessInput) (notify.ProcessOutput, error) {
	f.inputs = append(f.inputs, input)
	return f.out, f.err
}

func (f *fakeUseCase) GetBuildStatus() tracker.Status { return tracker.Status{} }

func newTestRouter(uc notify.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(mockLogger{}, uc, 10*time.Minute)

	r := gin.New()
	r.POST("/webhook/github", h.HandleGitHubWebhook)
	r.POST("/webhook/github/:channel", h.HandleGitHubWebhook)
	return r
}

func deliver(r *gin.Engine, path, deliveryID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{"ref":"refs/heads/main"}`))
	req.Header.Set("X-GitHub-Event", "push")
	req.Header.Set("X-Hub-Signature-256", "sha256=aabbcc")
	if deliveryID != "" {
		req.Header.Set("X-GitHub-Delivery", deliveryID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGitHubWebhook(t *testing.T) {
	t.Run("passes headers, body and channel through", func(t *testing.T) {
		uc := &fakeUseCase{out: notify.ProcessOutput{Status: notify.StatusNotified}}
		r := newTestRouter(uc)

		w := deliver(r, "/webhook/github/deploys", "guid-1")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(uc.inputs) != 1 {
			t.Fatalf("expected one processed delivery, got %d", len(uc.inputs))
		}
		input := uc.inputs[0]
		if input.EventType != "push" {
			t.Errorf("event type not forwarded: %q", input.EventType)
		}
		if input.Signature != "sha256=aabbcc" {
			t.Errorf("signature not forwarded: %q", input.Signature)
		}
		if input.Channel != "deploys" {
			t.Errorf("channel not forwarded: %q", input.Channel)
		}
		if input.DeliveryID != "guid-1" {
			t.Errorf("delivery id not forwarded: %q", input.DeliveryID)
		}
		if string(input.Payload) != `{"ref":"refs/heads/main"}` {
			t.Errorf("body not forwarded: %s", input.Payload)
		}
	})

	t.Run("channel is optional", func(t *testing.T) {
		uc := &fakeUseCase{out: notify.ProcessOutput{Status: notify.StatusNotified}}
		r := newTestRouter(uc)

		w := deliver(r, "/webhook/github", "guid-2")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.inputs[0].Channel != "" {
			t.Errorf("expected empty channel, got %q", uc.inputs[0].Channel)
		}
	})

	t.Run("processing errors map to 500 with the error text", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("parse push event: unexpected EOF")}
		r := newTestRouter(uc)

		w := deliver(r, "/webhook/github", "guid-3")

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "parse push event") {
			t.Errorf("error text must reach the sender: %s", w.Body.String())
		}
	})

	t.Run("duplicate deliveries are dropped", func(t *testing.T) {
		uc := &fakeUseCase{out: notify.ProcessOutput{Status: notify.StatusNotified}}
		r := newTestRouter(uc)

		deliver(r, "/webhook/github", "guid-4")
		w := deliver(r, "/webhook/github", "guid-4")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for duplicate, got %d", w.Code)
		}
		if len(uc.inputs) != 1 {
			t.Errorf("duplicate delivery must not be processed twice, got %d", len(uc.inputs))
		}
		if !strings.Contains(w.Body.String(), "duplicate delivery") {
			t.Errorf("expected duplicate marker in body: %s", w.Body.String())
		}
	})

	t.Run("missing delivery id is processed, never deduplicated", func(t *testing.T) {
		uc := &fakeUseCase{out: notify.ProcessOutput{Status: notify.StatusIgnored}}
		r := newTestRouter(uc)

		deliver(r, "/webhook/github", "")
		deliver(r, "/webhook/github", "")

		if len(uc.inputs) != 2 {
			t.Fatalf("expected both deliveries processed, got %d", len(uc.inputs))
		}
		if uc.inputs[0].DeliveryID == "" || uc.inputs[0].DeliveryID == uc.inputs[1].DeliveryID {
			t.Errorf("generated correlation ids must be present and distinct")
		}
	})
}
