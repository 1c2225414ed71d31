package service

import (
	"context"
	"encoding/json"
	"errors"

	stripe "github.com/stripe/stripe-go/v74"

	donationdal "github.com/masjidsuite/donations-service/donation/dal"
)

// handleChargeRefunded flips the donation to refunded and rolls the refunded
// amount out of the campaign total. Refunds for charges we never recorded are
// acknowledged with a warning.
func (s *StripeWebhookService) handleChargeRefunded(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return err
	}

	if charge.PaymentIntent == nil {
		l.Warningf("refunded charge %s has no payment intent, skipping", charge.ID)
		return nil
	}

	if err := s.donations.MarkRefunded(ctx, charge.PaymentIntent.ID, charge.AmountRefunded); err != nil {
		if errors.Is(err, donationdal.ErrDonationNotFound) {
			l.Warningf("refunded charge %s has no matching donation", charge.ID)
			return nil
		}

		return err
	}

	return nil
}
