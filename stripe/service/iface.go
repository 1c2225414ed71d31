package service

import (
	"context"
	"time"

	donationdomain "github.com/masjidsuite/donations-service/donation/domain"
	subscriptiondomain "github.com/masjidsuite/donations-service/subscription/domain"
)

// DonationRecorder is the donation side of webhook processing; satisfied by
// donation/service.DonationService.
//
//go:generate mockery --name DonationRecorder --output ./mocks
type DonationRecorder interface {
	RecordDonation(ctx context.Context, donation *donationdomain.Donation, sendReceipt bool) (*donationdomain.Donation, error)
	HasDonationForPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error)
	MarkRefunded(ctx context.Context, paymentIntentID string, amountRefunded int64) error
	MarkDisputed(ctx context.Context, paymentIntentID string) error
}

// SubscriptionManager is the recurring-plan side of webhook processing;
// satisfied by subscription/service.SubscriptionService.
//
//go:generate mockery --name SubscriptionManager --output ./mocks
type SubscriptionManager interface {
	Create(ctx context.Context, subscription *subscriptiondomain.RecurringDonation) error
	RecordInstallment(ctx context.Context, subscriptionID string, amount int64, paidAt time.Time, invoiceID string) error
	MarkPastDue(ctx context.Context, subscriptionID string, reason string) error
	ApplyUpdate(ctx context.Context, subscription *subscriptiondomain.RecurringDonation) error
	Cancel(ctx context.Context, subscriptionID string, cancelledAt time.Time) error
}
