package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/stripe/domain"
)

const (
	integrationsCollection  = "integrations"
	stripeDoc               = "stripe"
	webhookEventsCollection = "webhookEvents"
)

// WebhookEventsFirestore persists the idempotency ledger under
// integrations/stripe/webhookEvents/{eventID}.
type WebhookEventsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewWebhookEventsFirestore(fun connection.FirestoreFromContextFun) *WebhookEventsFirestore {
	return &WebhookEventsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *WebhookEventsFirestore) eventRef(ctx context.Context, eventID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).
		Collection(integrationsCollection).
		Doc(stripeDoc).
		Collection(webhookEventsCollection).
		Doc(eventID)
}

func (d *WebhookEventsFirestore) GetEvent(ctx context.Context, eventID string) (*domain.WebhookEventRecord, error) {
	snap, err := d.eventRef(ctx, eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrEventNotFound
		}

		return nil, err
	}

	return toEventRecord(snap)
}

func (d *WebhookEventsFirestore) MarkStarted(ctx context.Context, eventID, eventType string) (*domain.WebhookEventRecord, error) {
	fs := d.firestoreClientFun(ctx)
	ref := d.eventRef(ctx, eventID)

	var record domain.WebhookEventRecord

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		record = domain.WebhookEventRecord{
			Type:         eventType,
			Status:       domain.WebhookEventStatusStarted,
			Attempts:     1,
			TimeReceived: time.Now(),
		}

		if snap.Exists() {
			var existing domain.WebhookEventRecord
			if err := snap.DataTo(&existing); err != nil {
				return err
			}

			if existing.Status == domain.WebhookEventStatusCompleted {
				return ErrEventAlreadyProcessed
			}

			record = existing
			record.Status = domain.WebhookEventStatusStarted
			record.Attempts++
		}

		return tx.Set(ref, record)
	}, firestore.MaxAttempts(10))
	if err != nil {
		return nil, err
	}

	record.ID = eventID

	return &record, nil
}

func (d *WebhookEventsFirestore) MarkCompleted(ctx context.Context, eventID string) error {
	_, err := d.eventRef(ctx, eventID).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.WebhookEventStatusCompleted},
		{Path: "timeCompleted", Value: time.Now()},
		{Path: "lastError", Value: firestore.Delete},
	})

	return err
}

func (d *WebhookEventsFirestore) MarkFailed(ctx context.Context, eventID string, processErr error) error {
	_, err := d.eventRef(ctx, eventID).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.WebhookEventStatusFailed},
		{Path: "lastError", Value: processErr.Error()},
	})

	return err
}

func toEventRecord(snap *firestore.DocumentSnapshot) (*domain.WebhookEventRecord, error) {
	var record domain.WebhookEventRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, err
	}

	record.ID = snap.Ref.ID

	return &record, nil
}
