package domain

import "time"

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusSucceeded DonationStatus = "succeeded"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusRefunded  DonationStatus = "refunded"
	DonationStatusDisputed  DonationStatus = "disputed"
)

// Donation is a single settled (or attempted) payment. Recurring plans
// produce one Donation per billing cycle, linked by SubscriptionID.
type Donation struct {
	ID            string `firestore:"-"`
	ReceiptNumber string `firestore:"receiptNumber"`

	DonorName  string `firestore:"donorName"`
	DonorEmail string `firestore:"donorEmail"`
	DonorPhone string `firestore:"donorPhone,omitempty"`
	Anonymous  bool   `firestore:"anonymous"`

	// Amount is in the currency's minor units (cents).
	Amount int64 `firestore:"amount"`
	// RefundedAmount is set when the payment is refunded, partially or in full.
	RefundedAmount int64          `firestore:"refundedAmount,omitempty"`
	Currency       string         `firestore:"currency"`
	Status         DonationStatus `firestore:"status"`

	CampaignID string `firestore:"campaignId"`
	Fund       string `firestore:"fund"`

	IsRecurring bool   `firestore:"isRecurring"`
	Frequency   string `firestore:"frequency,omitempty"`

	PaymentIntentID   string `firestore:"paymentIntentId"`
	ChargeID          string `firestore:"chargeId,omitempty"`
	CheckoutSessionID string `firestore:"checkoutSessionId,omitempty"`
	InvoiceID         string `firestore:"invoiceId,omitempty"`
	SubscriptionID    string `firestore:"subscriptionId,omitempty"`
	CustomerID        string `firestore:"customerId,omitempty"`

	// EmailSent and CampaignApplied flag side effects that already ran, so a
	// redelivered event resumes only what is still pending.
	EmailSent       bool `firestore:"emailSent"`
	CampaignApplied bool `firestore:"campaignApplied"`

	TimeCreated  time.Time `firestore:"timeCreated,serverTimestamp"`
	TimeModified time.Time `firestore:"timeModified,serverTimestamp"`
}
