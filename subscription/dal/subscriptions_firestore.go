package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/subscription/domain"
)

const recurringDonationsCollection = "recurringDonations"

// SubscriptionsFirestore persists recurring giving plans keyed by the
// billing provider's subscription id.
type SubscriptionsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewSubscriptionsFirestore(fun connection.FirestoreFromContextFun) *SubscriptionsFirestore {
	return &SubscriptionsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *SubscriptionsFirestore) subscriptionRef(ctx context.Context, subscriptionID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(recurringDonationsCollection).Doc(subscriptionID)
}

func (d *SubscriptionsFirestore) GetSubscription(ctx context.Context, subscriptionID string) (*domain.RecurringDonation, error) {
	snap, err := d.subscriptionRef(ctx, subscriptionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSubscriptionNotFound
		}

		return nil, err
	}

	var subscription domain.RecurringDonation
	if err := snap.DataTo(&subscription); err != nil {
		return nil, err
	}

	subscription.ID = snap.Ref.ID

	return &subscription, nil
}

func (d *SubscriptionsFirestore) SaveSubscription(ctx context.Context, subscription *domain.RecurringDonation) error {
	_, err := d.subscriptionRef(ctx, subscription.ID).Set(ctx, subscription)
	return err
}

func (d *SubscriptionsFirestore) RecordInstallment(ctx context.Context, subscriptionID string, amount int64, nextPaymentDate time.Time, invoiceID string) error {
	fs := d.firestoreClientFun(ctx)
	ref := d.subscriptionRef(ctx, subscriptionID)

	return fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrSubscriptionNotFound
			}

			return err
		}

		var subscription domain.RecurringDonation
		if err := snap.DataTo(&subscription); err != nil {
			return err
		}

		// A redelivered invoice event must not roll the totals twice.
		if invoiceID != "" && subscription.LastInvoiceID == invoiceID {
			return nil
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "lifetimeTotal", Value: subscription.LifetimeTotal + amount},
			{Path: "installmentCount", Value: subscription.InstallmentCount + 1},
			{Path: "nextPaymentDate", Value: nextPaymentDate},
			{Path: "lastInvoiceId", Value: invoiceID},
			{Path: "status", Value: domain.SubscriptionStatusActive},
			{Path: "failureAttempts", Value: 0},
			{Path: "lastError", Value: firestore.Delete},
			{Path: "timeModified", Value: firestore.ServerTimestamp},
		})
	}, firestore.MaxAttempts(10))
}

func (d *SubscriptionsFirestore) MarkPastDue(ctx context.Context, subscriptionID string, reason string) (int64, error) {
	fs := d.firestoreClientFun(ctx)
	ref := d.subscriptionRef(ctx, subscriptionID)

	var attempts int64

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrSubscriptionNotFound
			}

			return err
		}

		var subscription domain.RecurringDonation
		if err := snap.DataTo(&subscription); err != nil {
			return err
		}

		attempts = subscription.FailureAttempts + 1

		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: domain.SubscriptionStatusPastDue},
			{Path: "failureAttempts", Value: attempts},
			{Path: "lastError", Value: reason},
			{Path: "timeModified", Value: firestore.ServerTimestamp},
		})
	}, firestore.MaxAttempts(10))
	if err != nil {
		return 0, err
	}

	return attempts, nil
}

func (d *SubscriptionsFirestore) CancelSubscription(ctx context.Context, subscriptionID string, cancelledAt time.Time) error {
	_, err := d.subscriptionRef(ctx, subscriptionID).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.SubscriptionStatusCancelled},
		{Path: "cancelledAt", Value: cancelledAt},
		{Path: "timeModified", Value: firestore.ServerTimestamp},
	})

	return err
}
