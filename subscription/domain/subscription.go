package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyYearly      Frequency = "yearly"
)

// RecurringDonation is a donor's recurring giving plan, keyed by the billing
// provider's subscription id. Each billing cycle appends a Donation record
// and rolls the lifetime totals here.
type RecurringDonation struct {
	ID string `firestore:"-"`

	DonorName  string `firestore:"donorName"`
	DonorEmail string `firestore:"donorEmail"`
	CustomerID string `firestore:"customerId"`

	// Amount is the per-installment amount in minor units.
	Amount    int64     `firestore:"amount"`
	Currency  string    `firestore:"currency"`
	Frequency Frequency `firestore:"frequency"`
	Fund      string    `firestore:"fund"`

	Status SubscriptionStatus `firestore:"status"`

	NextPaymentDate  time.Time `firestore:"nextPaymentDate"`
	LastInvoiceID    string    `firestore:"lastInvoiceId,omitempty"`
	LifetimeTotal    int64     `firestore:"lifetimeTotal"`
	InstallmentCount int64     `firestore:"installmentCount"`

	FailureAttempts int64  `firestore:"failureAttempts"`
	LastError       string `firestore:"lastError,omitempty"`

	CancelledAt *time.Time `firestore:"cancelledAt,omitempty"`

	TimeCreated  time.Time `firestore:"timeCreated,serverTimestamp"`
	TimeModified time.Time `firestore:"timeModified,serverTimestamp"`
}
