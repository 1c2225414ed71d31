package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	stripe "github.com/stripe/stripe-go/v74"

	donationdomain "github.com/masjidsuite/donations-service/donation/domain"
	donationservice "github.com/masjidsuite/donations-service/donation/service"
)

// handlePaymentIntentSucceeded records donations made outside a checkout
// session, e.g. through the in-app payment sheet. Payments that belong to an
// invoice are skipped here and recorded by the invoice event; payments whose
// checkout event arrived first are already in the ledger.
func (s *StripeWebhookService) handlePaymentIntentSucceeded(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return err
	}

	if pi.Invoice != nil {
		l.Infof("payment intent %s belongs to invoice %s, skipping", pi.ID, pi.Invoice.ID)
		return nil
	}

	exists, err := s.donations.HasDonationForPaymentIntent(ctx, pi.ID)
	if err != nil {
		return err
	}

	if exists {
		l.Infof("donation for payment intent %s already recorded, skipping", pi.ID)
		return nil
	}

	donorEmail := pi.Metadata["donorEmail"]
	if donorEmail == "" {
		donorEmail = pi.ReceiptEmail
	}

	donation := &donationdomain.Donation{
		DonorName:       pi.Metadata["donorName"],
		DonorEmail:      donorEmail,
		DonorPhone:      pi.Metadata["donorPhone"],
		Amount:          pi.Amount,
		Currency:        strings.ToUpper(string(pi.Currency)),
		CampaignID:      pi.Metadata["campaignId"],
		Fund:            pi.Metadata["fund"],
		PaymentIntentID: pi.ID,
	}

	if pi.Customer != nil {
		donation.CustomerID = pi.Customer.ID
	}

	if pi.LatestCharge != nil {
		donation.ChargeID = pi.LatestCharge.ID
	}

	if _, err := s.donations.RecordDonation(ctx, donation, true); err != nil {
		if errors.Is(err, donationservice.ErrDonationAlreadyRecorded) {
			l.Infof("donation for payment intent %s already recorded", pi.ID)
			return nil
		}

		return err
	}

	return nil
}

// handlePaymentIntentFailed only logs the failure; no donation record exists
// yet for a payment that never settled.
func (s *StripeWebhookService) handlePaymentIntentFailed(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return err
	}

	reason := "unknown"
	if pi.LastPaymentError != nil {
		reason = string(pi.LastPaymentError.Code)
	}

	l.Warningf("payment intent %s failed: %s", pi.ID, reason)

	return nil
}
