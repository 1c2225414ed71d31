package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/masjidsuite/donations-service/campaign/domain"
	"github.com/masjidsuite/donations-service/framework/connection"
)

const campaignsCollection = "campaigns"

// CampaignsFirestore maintains campaign documents and their running totals.
type CampaignsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewCampaignsFirestore(fun connection.FirestoreFromContextFun) *CampaignsFirestore {
	return &CampaignsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CampaignsFirestore) campaignRef(ctx context.Context, campaignID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(campaignsCollection).Doc(campaignID)
}

func (d *CampaignsFirestore) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	snap, err := d.campaignRef(ctx, campaignID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCampaignNotFound
		}

		return nil, err
	}

	var campaign domain.Campaign
	if err := snap.DataTo(&campaign); err != nil {
		return nil, err
	}

	campaign.ID = snap.Ref.ID

	return &campaign, nil
}

func (d *CampaignsFirestore) AdjustTotal(ctx context.Context, campaignID string, delta int64) error {
	fs := d.firestoreClientFun(ctx)
	ref := d.campaignRef(ctx, campaignID)

	return fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrCampaignNotFound
			}

			return err
		}

		var campaign domain.Campaign
		if err := snap.DataTo(&campaign); err != nil {
			return err
		}

		updates := []firestore.Update{
			{Path: "raised", Value: campaign.Raised + delta},
			{Path: "timeModified", Value: firestore.ServerTimestamp},
		}
		if delta > 0 {
			updates = append(updates, firestore.Update{Path: "donorCount", Value: campaign.DonorCount + 1})
		}

		return tx.Update(ref, updates)
	}, firestore.MaxAttempts(10))
}
