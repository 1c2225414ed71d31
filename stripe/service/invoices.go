package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v74"

	donationdomain "github.com/masjidsuite/donations-service/donation/domain"
	donationservice "github.com/masjidsuite/donations-service/donation/service"
	subscriptiondal "github.com/masjidsuite/donations-service/subscription/dal"
	subscriptiondomain "github.com/masjidsuite/donations-service/subscription/domain"
	subscriptionservice "github.com/masjidsuite/donations-service/subscription/service"
)

// handleInvoicePaymentSucceeded records one installment of a recurring plan.
// The first invoice of a new plan gets no receipt email, the welcome email
// already covers it. An installment already in the ledger still reconciles
// the plan totals; the plan-side write is keyed by the invoice id, so a
// redelivery after a partial failure converges instead of skipping.
func (s *StripeWebhookService) handleInvoicePaymentSucceeded(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		return err
	}

	if inv.Subscription == nil {
		l.Infof("invoice %s is not tied to a subscription, skipping", inv.ID)
		return nil
	}

	if inv.PaymentIntent == nil {
		l.Warningf("invoice %s has no payment intent, skipping", inv.ID)
		return nil
	}

	donation := &donationdomain.Donation{
		DonorName:       inv.CustomerName,
		DonorEmail:      inv.CustomerEmail,
		Amount:          inv.AmountPaid,
		Currency:        strings.ToUpper(string(inv.Currency)),
		Fund:            inv.Metadata["fund"],
		IsRecurring:     true,
		Frequency:       string(invoiceFrequency(&inv)),
		PaymentIntentID: inv.PaymentIntent.ID,
		InvoiceID:       inv.ID,
		SubscriptionID:  inv.Subscription.ID,
	}

	if inv.Customer != nil {
		donation.CustomerID = inv.Customer.ID
	}

	sendReceipt := inv.BillingReason != stripe.InvoiceBillingReasonSubscriptionCreate

	if _, err := s.donations.RecordDonation(ctx, donation, sendReceipt); err != nil {
		if !errors.Is(err, donationservice.ErrDonationAlreadyRecorded) {
			return err
		}

		l.Infof("installment for payment intent %s already recorded, reconciling plan", donation.PaymentIntentID)
	}

	paidAt := time.Now()
	if inv.StatusTransitions != nil && inv.StatusTransitions.PaidAt > 0 {
		paidAt = time.Unix(inv.StatusTransitions.PaidAt, 0)
	}

	if err := s.subscriptions.RecordInstallment(ctx, inv.Subscription.ID, inv.AmountPaid, paidAt, inv.ID); err != nil {
		if errors.Is(err, subscriptiondal.ErrSubscriptionNotFound) {
			// The created event may still be in flight; the installment
			// donation is recorded, the plan totals catch up on the next
			// invoice.
			l.Warningf("invoice %s references unknown subscription %s", inv.ID, inv.Subscription.ID)
			return nil
		}

		return err
	}

	return nil
}

func (s *StripeWebhookService) handleInvoicePaymentFailed(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		return err
	}

	if inv.Subscription == nil {
		l.Infof("failed invoice %s is not tied to a subscription, skipping", inv.ID)
		return nil
	}

	if err := s.subscriptions.MarkPastDue(ctx, inv.Subscription.ID, failureReason(&inv)); err != nil {
		if errors.Is(err, subscriptiondal.ErrSubscriptionNotFound) {
			l.Warningf("failed invoice %s references unknown subscription %s", inv.ID, inv.Subscription.ID)
			return nil
		}

		return err
	}

	return nil
}

// invoiceFrequency derives the giving frequency from the invoice's first
// recurring line. Empty when the line carries no recognizable interval.
func invoiceFrequency(inv *stripe.Invoice) subscriptiondomain.Frequency {
	if inv.Lines == nil || len(inv.Lines.Data) == 0 {
		return ""
	}

	price := inv.Lines.Data[0].Price
	if price == nil || price.Recurring == nil {
		return ""
	}

	frequency, err := subscriptionservice.FrequencyFromInterval(string(price.Recurring.Interval), price.Recurring.IntervalCount)
	if err != nil {
		return ""
	}

	return frequency
}

func failureReason(inv *stripe.Invoice) string {
	if inv.LastFinalizationError != nil {
		if inv.LastFinalizationError.Msg != "" {
			return inv.LastFinalizationError.Msg
		}

		if inv.LastFinalizationError.Code != "" {
			return string(inv.LastFinalizationError.Code)
		}
	}

	return "invoice payment failed"
}
