package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	testtools "github.com/masjidsuite/donations-service/common/test_tools"
	"github.com/masjidsuite/donations-service/framework/web"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/stripe/service"
)

type stubWebhookService struct {
	err      error
	received []byte
}

func (s *stubWebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	s.received = body
	return s.err
}

func testLoggerProvider(ctx context.Context) logger.ILogger {
	return &logger.Logger{}
}

func TestStripe_HandleWebhookEvent(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"charge.refunded"}`)

	t.Run("acknowledges a processed event", func(t *testing.T) {
		stub := &stubWebhookService{}
		h := &Stripe{loggerProvider: testLoggerProvider, service: stub}

		ctx := testtools.GenerateCtxWithRawBody(t, body, map[string]string{
			"Stripe-Signature": "t=1,v1=deadbeef",
		})

		err := h.HandleWebhookEvent(ctx)

		assert.NoError(t, err)
		assert.Equal(t, body, stub.received)
	})

	t.Run("missing signature header is a bad request", func(t *testing.T) {
		h := &Stripe{loggerProvider: testLoggerProvider, service: &stubWebhookService{}}

		ctx := testtools.GenerateCtxWithRawBody(t, body, nil)

		err := h.HandleWebhookEvent(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusBadRequest, webErr.Status)
	})

	t.Run("invalid signature is a bad request", func(t *testing.T) {
		stub := &stubWebhookService{err: service.ErrInvalidSignature}
		h := &Stripe{loggerProvider: testLoggerProvider, service: stub}

		ctx := testtools.GenerateCtxWithRawBody(t, body, map[string]string{
			"Stripe-Signature": "t=1,v1=deadbeef",
		})

		err := h.HandleWebhookEvent(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusBadRequest, webErr.Status)
	})

	t.Run("processing failure is an internal error so the event is redelivered", func(t *testing.T) {
		stub := &stubWebhookService{err: errors.New("firestore unavailable")}
		h := &Stripe{loggerProvider: testLoggerProvider, service: stub}

		ctx := testtools.GenerateCtxWithRawBody(t, body, map[string]string{
			"Stripe-Signature": "t=1,v1=deadbeef",
		})

		err := h.HandleWebhookEvent(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusInternalServerError, webErr.Status)
	})
}
