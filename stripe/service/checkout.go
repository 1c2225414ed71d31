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

// handleCheckoutSessionCompleted records a one-time donation made through a
// hosted checkout page. Subscription checkouts are handled by the
// subscription and invoice events.
func (s *StripeWebhookService) handleCheckoutSessionCompleted(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return err
	}

	if session.Mode != stripe.CheckoutSessionModePayment {
		l.Infof("checkout session %s has mode %s, skipping", session.ID, session.Mode)
		return nil
	}

	if session.PaymentIntent == nil {
		l.Warningf("checkout session %s has no payment intent, skipping", session.ID)
		return nil
	}

	donation := &donationdomain.Donation{
		Amount:            session.AmountTotal,
		Currency:          strings.ToUpper(string(session.Currency)),
		CampaignID:        session.Metadata["campaignId"],
		Fund:              session.Metadata["fund"],
		PaymentIntentID:   session.PaymentIntent.ID,
		CheckoutSessionID: session.ID,
	}

	if session.CustomerDetails != nil {
		donation.DonorName = session.CustomerDetails.Name
		donation.DonorEmail = session.CustomerDetails.Email
		donation.DonorPhone = session.CustomerDetails.Phone
	}

	if session.Customer != nil {
		donation.CustomerID = session.Customer.ID

		if donation.DonorEmail == "" {
			s.fillDonorFromCustomer(ctx, donation, session.Customer.ID)
		}
	}

	if _, err := s.donations.RecordDonation(ctx, donation, true); err != nil {
		if errors.Is(err, donationservice.ErrDonationAlreadyRecorded) {
			l.Infof("donation for payment intent %s already recorded", donation.PaymentIntentID)
			return nil
		}

		return err
	}

	return nil
}

// fillDonorFromCustomer looks the customer up through the API when the
// session carries no donor details. Best effort; the donation is recorded as
// anonymous when the lookup fails.
func (s *StripeWebhookService) fillDonorFromCustomer(ctx context.Context, donation *donationdomain.Donation, customerID string) {
	l := s.loggerProvider(ctx)

	if s.stripeClient == nil || s.stripeClient.API == nil {
		return
	}

	customer, err := s.stripeClient.Customers.Get(customerID, nil)
	if err != nil {
		l.Warningf("failed to look up customer %s: %s", customerID, err)
		return
	}

	donation.DonorName = customer.Name
	donation.DonorEmail = customer.Email
	donation.DonorPhone = customer.Phone
}
