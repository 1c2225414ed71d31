package dal

import (
	"context"

	"github.com/masjidsuite/donations-service/stripe/domain"
)

//go:generate mockery --name WebhookEvents --output ./mocks
type WebhookEvents interface {
	GetEvent(ctx context.Context, eventID string) (*domain.WebhookEventRecord, error)
	// MarkStarted claims the event for processing: it creates the ledger
	// record on first delivery and increments the attempt counter on
	// retries. Returns ErrEventAlreadyProcessed when the record is already
	// completed.
	MarkStarted(ctx context.Context, eventID, eventType string) (*domain.WebhookEventRecord, error)
	MarkCompleted(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, processErr error) error
}
