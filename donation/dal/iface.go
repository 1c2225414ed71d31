package dal

import (
	"context"

	"github.com/masjidsuite/donations-service/donation/domain"
)

//go:generate mockery --name Donations --output ./mocks
type Donations interface {
	GetDonation(ctx context.Context, donationID string) (*domain.Donation, error)
	// GetDonationByPaymentIntent returns ErrDonationNotFound when no donation
	// references the given payment intent.
	GetDonationByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Donation, error)
	GetDonationsBySubscription(ctx context.Context, subscriptionID string) ([]*domain.Donation, error)
	CreateDonation(ctx context.Context, donation *domain.Donation) (string, error)
	UpdateDonationStatus(ctx context.Context, donationID string, status domain.DonationStatus) error
	// SetRefunded marks the donation refunded and records the refunded amount.
	SetRefunded(ctx context.Context, donationID string, amountRefunded int64) error
	SetEmailSent(ctx context.Context, donationID string) error
	SetCampaignApplied(ctx context.Context, donationID string) error
	// NextReceiptNumber transactionally increments and returns the yearly
	// receipt sequence for the given year.
	NextReceiptNumber(ctx context.Context, year int) (int64, error)
}
