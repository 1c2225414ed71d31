package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v74"

	subscriptiondomain "github.com/masjidsuite/donations-service/subscription/domain"
	subscriptionservice "github.com/masjidsuite/donations-service/subscription/service"
)

func (s *StripeWebhookService) handleSubscriptionCreated(ctx context.Context, event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return err
	}

	plan, err := s.toRecurringDonation(&sub)
	if err != nil {
		return err
	}

	return s.subscriptions.Create(ctx, plan)
}

func (s *StripeWebhookService) handleSubscriptionUpdated(ctx context.Context, event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return err
	}

	if sub.Status == stripe.SubscriptionStatusCanceled {
		return s.subscriptions.Cancel(ctx, sub.ID, cancelledAt(&sub))
	}

	plan, err := s.toRecurringDonation(&sub)
	if err != nil {
		return err
	}

	return s.subscriptions.ApplyUpdate(ctx, plan)
}

func (s *StripeWebhookService) handleSubscriptionDeleted(ctx context.Context, event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return err
	}

	return s.subscriptions.Cancel(ctx, sub.ID, cancelledAt(&sub))
}

func (s *StripeWebhookService) toRecurringDonation(sub *stripe.Subscription) (*subscriptiondomain.RecurringDonation, error) {
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return nil, fmt.Errorf("subscription %s has no priced items", sub.ID)
	}

	price := sub.Items.Data[0].Price

	var frequency subscriptiondomain.Frequency

	if price.Recurring != nil {
		var err error

		frequency, err = subscriptionservice.FrequencyFromInterval(string(price.Recurring.Interval), price.Recurring.IntervalCount)
		if err != nil {
			return nil, fmt.Errorf("subscription %s: %w", sub.ID, err)
		}
	}

	plan := &subscriptiondomain.RecurringDonation{
		ID:         sub.ID,
		DonorName:  sub.Metadata["donorName"],
		DonorEmail: sub.Metadata["donorEmail"],
		Amount:     price.UnitAmount,
		Currency:   strings.ToUpper(string(price.Currency)),
		Frequency:  frequency,
		Fund:       sub.Metadata["fund"],
		Status:     toSubscriptionStatus(sub.Status),
	}

	if sub.Customer != nil {
		plan.CustomerID = sub.Customer.ID
	}

	if sub.CurrentPeriodEnd > 0 {
		plan.NextPaymentDate = time.Unix(sub.CurrentPeriodEnd, 0)
	}

	return plan, nil
}

func toSubscriptionStatus(status stripe.SubscriptionStatus) subscriptiondomain.SubscriptionStatus {
	switch status {
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return subscriptiondomain.SubscriptionStatusPastDue
	case stripe.SubscriptionStatusCanceled:
		return subscriptiondomain.SubscriptionStatusCancelled
	default:
		return subscriptiondomain.SubscriptionStatusActive
	}
}

func cancelledAt(sub *stripe.Subscription) time.Time {
	if sub.CanceledAt > 0 {
		return time.Unix(sub.CanceledAt, 0)
	}

	return time.Now()
}
