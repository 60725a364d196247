package api

import (
	"io"
	"net/http"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Stripe webhook payloads are small; this bound only guards against abuse.
const maxWebhookBodyBytes = 64 * 1024

type WebhookHandler struct {
	checkout commands.CheckoutCommands
}

func NewWebhookHandler(checkout commands.CheckoutCommands) *WebhookHandler {
	return &WebhookHandler{checkout: checkout}
}

// @Summary Stripe webhook
// @Description Receives payment events; a verified checkout completion creates the booking
// @Tags webhook
// @Accept json
// @Success 200 {string} string
// @Failure 400 {object} httperr.Response
// @Router /stripe/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read webhook payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.checkout.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		// Signature failures and storage errors both come back 400 so the
		// provider retries; nothing was booked.
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook rejected")
		return
	}

	// The ack must carry a body so Stripe records a delivered 200.
	c.JSON(http.StatusOK, gin.H{"received": true})
}
