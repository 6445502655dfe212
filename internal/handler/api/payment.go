package api

import (
	"io"
	"net/http"

	"find-my-space/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	webhookSignatureHeader = "X-Razorpay-Signature"
	maxWebhookBytes        = 1 << 20
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment gateway webhook
// @Description Authenticated by the HMAC signature over the raw body. Confirms paid bookings and never downgrades one.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.HandleWebhook(c.Request.Context(), body, c.GetHeader(webhookSignatureHeader)); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
