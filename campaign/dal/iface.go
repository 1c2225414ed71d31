package dal

import (
	"context"

	"github.com/masjidsuite/donations-service/campaign/domain"
)

//go:generate mockery --name Campaigns --output ./mocks
type Campaigns interface {
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	// AdjustTotal atomically applies delta to the campaign raised total.
	// A positive delta also increments the donor count.
	AdjustTotal(ctx context.Context, campaignID string, delta int64) error
}
