package dal

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/masjidsuite/donations-service/donation/domain"
	"github.com/masjidsuite/donations-service/framework/connection"
)

const (
	donationsCollection       = "donations"
	receiptCountersCollection = "receiptCounters"
)

// DonationsFirestore persists donation records and the yearly receipt counters.
type DonationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewDonationsFirestore(fun connection.FirestoreFromContextFun) *DonationsFirestore {
	return &DonationsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *DonationsFirestore) donationsRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(donationsCollection)
}

func (d *DonationsFirestore) GetDonation(ctx context.Context, donationID string) (*domain.Donation, error) {
	snap, err := d.donationsRef(ctx).Doc(donationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrDonationNotFound
		}

		return nil, err
	}

	return toDonation(snap)
}

func (d *DonationsFirestore) GetDonationByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Donation, error) {
	iter := d.donationsRef(ctx).
		Where("paymentIntentId", "==", paymentIntentID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, ErrDonationNotFound
		}

		return nil, err
	}

	return toDonation(snap)
}

func (d *DonationsFirestore) GetDonationsBySubscription(ctx context.Context, subscriptionID string) ([]*domain.Donation, error) {
	iter := d.donationsRef(ctx).
		Where("subscriptionId", "==", subscriptionID).
		OrderBy("timeCreated", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var donations []*domain.Donation

	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}

			return nil, err
		}

		donation, err := toDonation(snap)
		if err != nil {
			return nil, err
		}

		donations = append(donations, donation)
	}

	return donations, nil
}

func (d *DonationsFirestore) CreateDonation(ctx context.Context, donation *domain.Donation) (string, error) {
	ref, _, err := d.donationsRef(ctx).Add(ctx, donation)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *DonationsFirestore) UpdateDonationStatus(ctx context.Context, donationID string, status domain.DonationStatus) error {
	_, err := d.donationsRef(ctx).Doc(donationID).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "timeModified", Value: firestore.ServerTimestamp},
	})

	return err
}

func (d *DonationsFirestore) SetRefunded(ctx context.Context, donationID string, amountRefunded int64) error {
	_, err := d.donationsRef(ctx).Doc(donationID).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.DonationStatusRefunded},
		{Path: "refundedAmount", Value: amountRefunded},
		{Path: "timeModified", Value: firestore.ServerTimestamp},
	})

	return err
}

func (d *DonationsFirestore) SetEmailSent(ctx context.Context, donationID string) error {
	_, err := d.donationsRef(ctx).Doc(donationID).Update(ctx, []firestore.Update{
		{Path: "emailSent", Value: true},
		{Path: "timeModified", Value: firestore.ServerTimestamp},
	})

	return err
}

func (d *DonationsFirestore) SetCampaignApplied(ctx context.Context, donationID string) error {
	_, err := d.donationsRef(ctx).Doc(donationID).Update(ctx, []firestore.Update{
		{Path: "campaignApplied", Value: true},
		{Path: "timeModified", Value: firestore.ServerTimestamp},
	})

	return err
}

func (d *DonationsFirestore) NextReceiptNumber(ctx context.Context, year int) (int64, error) {
	fs := d.firestoreClientFun(ctx)
	ref := fs.Collection(receiptCountersCollection).Doc(strconv.Itoa(year))

	var seq int64

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		seq = 1

		if snap.Exists() {
			current, err := snap.DataAt("seq")
			if err != nil {
				return err
			}

			seq = current.(int64) + 1
		}

		return tx.Set(ref, map[string]interface{}{"seq": seq})
	}, firestore.MaxAttempts(10))
	if err != nil {
		return 0, err
	}

	return seq, nil
}

func toDonation(snap *firestore.DocumentSnapshot) (*domain.Donation, error) {
	var donation domain.Donation
	if err := snap.DataTo(&donation); err != nil {
		return nil, err
	}

	donation.ID = snap.Ref.ID

	return &donation, nil
}
