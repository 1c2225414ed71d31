package domain

import "time"

type WebhookEventStatus string

const (
	WebhookEventStatusStarted   WebhookEventStatus = "started"
	WebhookEventStatusCompleted WebhookEventStatus = "completed"
	WebhookEventStatusFailed    WebhookEventStatus = "failed"
)

// WebhookEventRecord is the idempotency ledger entry for a received event,
// keyed by the provider's event id. A completed record is terminal; replays
// of a completed event are acknowledged without re-processing.
type WebhookEventRecord struct {
	ID       string             `firestore:"-"`
	Type     string             `firestore:"type"`
	Status   WebhookEventStatus `firestore:"status"`
	Attempts int64              `firestore:"attempts"`

	LastError string `firestore:"lastError,omitempty"`

	TimeReceived  time.Time `firestore:"timeReceived"`
	TimeCompleted time.Time `firestore:"timeCompleted,omitempty"`
}
