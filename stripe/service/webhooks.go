package service

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/masjidsuite/donations-service/stripe/dal"
	"github.com/masjidsuite/donations-service/stripe/domain"
)

// HandleEvent verifies the payload signature, claims the event in the
// idempotency ledger and dispatches it to its handler. Events of types we do
// not handle are acknowledged without touching the ledger.
func (s *StripeWebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	l := s.loggerProvider(ctx)

	if len(body) == 0 {
		return ErrEmptyPayload
	}

	event, err := s.constructEvent(body, signature)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	handler, ok := s.handlers[string(event.Type)]
	if !ok {
		l.Infof("ignoring unhandled event %s of type %s", event.ID, event.Type)
		return nil
	}

	record, err := s.eventsDAL.GetEvent(ctx, event.ID)
	if err != nil && !errors.Is(err, dal.ErrEventNotFound) {
		return err
	}

	if record != nil && record.Status == domain.WebhookEventStatusCompleted {
		l.Infof("event %s already processed, acknowledging", event.ID)
		return nil
	}

	record, err = s.eventsDAL.MarkStarted(ctx, event.ID, string(event.Type))
	if err != nil {
		if errors.Is(err, dal.ErrEventAlreadyProcessed) {
			l.Infof("event %s already processed, acknowledging", event.ID)
			return nil
		}

		return err
	}

	l.Infof("processing event %s of type %s (attempt %d)", event.ID, event.Type, record.Attempts)

	if err := handler(ctx, &event); err != nil {
		if markErr := s.eventsDAL.MarkFailed(ctx, event.ID, err); markErr != nil {
			l.Errorf("failed to mark event %s as failed: %s", event.ID, markErr)
		}

		return err
	}

	return s.eventsDAL.MarkCompleted(ctx, event.ID)
}

func (s *StripeWebhookService) constructEvent(body []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(body, signature, s.stripeClient.webhookSignKey,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
}
