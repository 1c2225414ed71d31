package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjidsuite/donations-service/framework/web"
	"github.com/masjidsuite/donations-service/stripe/service"
)

const signatureHeader = "Stripe-Signature"

var errMissingSignature = errors.New("missing Stripe-Signature header")

// HandleWebhookEvent receives a webhook delivery, hands the raw payload to
// the webhook service and acknowledges with 200 so the provider stops
// redelivering. Verification failures get 400; processing failures get 500
// to trigger a redelivery.
func (h *Stripe) HandleWebhookEvent(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	signature := ctx.GetHeader(signatureHeader)
	if signature == "" {
		return web.NewRequestError(errMissingSignature, http.StatusBadRequest)
	}

	if err := h.service.HandleEvent(ctx, body, signature); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) || errors.Is(err, service.ErrEmptyPayload) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]bool{"received": true}, http.StatusOK)
}
