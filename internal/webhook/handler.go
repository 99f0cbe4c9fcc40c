package webhook

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github-slack-bridge/internal/notify"
	pkgResponse "github-slack-bridge/pkg/response"
)

// HandleGitHubWebhook processes one GitHub webhook delivery.
// @Summary     GitHub webhook receiver
// @Description Validates, classifies and relays a GitHub event to Slack.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       channel path string false "Slack channel override"
// @Success     200 {object} response.Resp "Delivery processed or ignored"
// @Failure     500 {object} response.Resp "Payload could not be processed"
// @Router      /webhook/github/{channel} [POST]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	deliveryID := c.GetHeader("X-GitHub-Delivery")
	if deliveryID == "" {
		// Correlation only; generated IDs are never deduplicated.
		deliveryID = uuid.NewString()
	} else {
		if _, dup := h.seen.Get(deliveryID); dup {
			h.l.Infof(ctx, "webhook %s: duplicate delivery, skipping", deliveryID)
			pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "duplicate delivery"})
			return
		}
		h.seen.Add(deliveryID, struct{}{})
	}

	out, err := h.uc.ProcessWebhook(ctx, notify.ProcessInput{
		EventType:  c.GetHeader("X-GitHub-Event"),
		Payload:    body,
		Signature:  c.GetHeader("X-Hub-Signature-256"),
		Channel:    c.Param("channel"),
		DeliveryID: deliveryID,
	})
	if err != nil {
		h.l.Errorf(ctx, "webhook %s: processing failed: %v", deliveryID, err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"status": string(out.Status), "reason": out.Reason})
}
