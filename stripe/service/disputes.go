package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	stripe "github.com/stripe/stripe-go/v74"

	donationdal "github.com/masjidsuite/donations-service/donation/dal"
)

const disputeLookupAttempts = 3

// handleDisputeCreated flips the disputed donation's status. The dispute can
// outrun the payment event that creates the donation, so the lookup retries
// with a linear backoff. After the last attempt the dispute is logged as
// unresolved and the event acknowledged; failing it would only make the
// provider redeliver an event we cannot act on.
func (s *StripeWebhookService) handleDisputeCreated(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var dispute stripe.Dispute
	if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
		return err
	}

	if dispute.PaymentIntent == nil {
		l.Warningf("dispute %s has no payment intent, skipping", dispute.ID)
		return nil
	}

	for attempt := 1; attempt <= disputeLookupAttempts; attempt++ {
		err := s.donations.MarkDisputed(ctx, dispute.PaymentIntent.ID)
		if err == nil {
			return nil
		}

		if !errors.Is(err, donationdal.ErrDonationNotFound) {
			return err
		}

		if attempt < disputeLookupAttempts {
			delay := time.Duration(attempt) * s.retryDelay
			l.Infof("dispute %s: donation for %s not found yet, retrying in %s", dispute.ID, dispute.PaymentIntent.ID, delay)
			time.Sleep(delay)
		}
	}

	l.Warningf("dispute %s unresolved: no donation found for payment intent %s after %d attempts", dispute.ID, dispute.PaymentIntent.ID, disputeLookupAttempts)

	return nil
}
