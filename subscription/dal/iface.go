package dal

import (
	"context"
	"time"

	"github.com/masjidsuite/donations-service/subscription/domain"
)

//go:generate mockery --name Subscriptions --output ./mocks
type Subscriptions interface {
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.RecurringDonation, error)
	// SaveSubscription writes the full record keyed by the subscription id.
	SaveSubscription(ctx context.Context, subscription *domain.RecurringDonation) error
	// RecordInstallment transactionally adds amount to the lifetime totals,
	// advances the next payment date and clears any past-due state. An
	// invoice id matching the last recorded one is a no-op.
	RecordInstallment(ctx context.Context, subscriptionID string, amount int64, nextPaymentDate time.Time, invoiceID string) error
	// MarkPastDue transactionally flips the plan to past due and increments
	// the failure-attempt counter. Returns the new attempt count.
	MarkPastDue(ctx context.Context, subscriptionID string, reason string) (int64, error)
	CancelSubscription(ctx context.Context, subscriptionID string, cancelledAt time.Time) error
}
