package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	campaigndal "github.com/masjidsuite/donations-service/campaign/dal"
	campaignmocks "github.com/masjidsuite/donations-service/campaign/dal/mocks"
	"github.com/masjidsuite/donations-service/donation/dal"
	"github.com/masjidsuite/donations-service/donation/dal/mocks"
	"github.com/masjidsuite/donations-service/donation/domain"
	"github.com/masjidsuite/donations-service/logger"
	notificationmocks "github.com/masjidsuite/donations-service/notification/mocks"
)

type fixedLocation struct{}

func (fixedLocation) Location(ctx context.Context) *time.Location {
	return time.UTC
}

type stubLocation struct {
	loc *time.Location
}

func (s stubLocation) Location(ctx context.Context) *time.Location {
	return s.loc
}

func testLoggerProvider(ctx context.Context) logger.ILogger {
	return &logger.Logger{}
}

type donationServiceFields struct {
	donationsDAL    *mocks.Donations
	campaignsDAL    *campaignmocks.Campaigns
	emailDispatcher *notificationmocks.Dispatcher
	pushDispatcher  *notificationmocks.PushDispatcher
}

func newTestDonationService(t *testing.T) (*DonationService, *donationServiceFields) {
	f := &donationServiceFields{
		donationsDAL:    mocks.NewDonations(t),
		campaignsDAL:    campaignmocks.NewCampaigns(t),
		emailDispatcher: notificationmocks.NewDispatcher(t),
		pushDispatcher:  notificationmocks.NewPushDispatcher(t),
	}

	s := &DonationService{
		loggerProvider:  testLoggerProvider,
		donationsDAL:    f.donationsDAL,
		campaignsDAL:    f.campaignsDAL,
		emailDispatcher: f.emailDispatcher,
		pushDispatcher:  f.pushDispatcher,
		settings:        fixedLocation{},
		now: func() time.Time {
			return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		},
	}

	return s, f
}

func TestDonationService_RecordDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("records, numbers and emails a campaign donation", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2026).
			Return(int64(7), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_1", nil).
			Once()
		f.campaignsDAL.On("AdjustTotal", ctx, "camp_1", int64(5000)).
			Return(nil).
			Once()
		f.donationsDAL.On("SetCampaignApplied", ctx, "don_1").
			Return(nil).
			Once()
		f.pushDispatcher.On("Publish", ctx, "donations", mock.Anything, mock.Anything, mock.Anything).
			Return(nil).
			Once()
		f.emailDispatcher.On("Send", ctx, mock.Anything, "fatima@example.org", mock.Anything).
			Return(nil).
			Once()
		f.donationsDAL.On("SetEmailSent", ctx, "don_1").
			Return(nil).
			Once()

		donation, err := s.RecordDonation(ctx, &domain.Donation{
			DonorName:       "Fatima Khan",
			DonorEmail:      "fatima@example.org",
			Amount:          5000,
			Currency:        "AUD",
			CampaignID:      "camp_1",
			PaymentIntentID: "pi_1",
		}, true)

		assert.NoError(t, err)
		assert.Equal(t, "don_1", donation.ID)
		assert.Equal(t, "RCP-2026-00007", donation.ReceiptNumber)
		assert.Equal(t, domain.DonationStatusSucceeded, donation.Status)
		assert.False(t, donation.Anonymous)
	})

	t.Run("rejects a duplicate payment intent", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{ID: "don_1"}, nil).
			Once()

		_, err := s.RecordDonation(ctx, &domain.Donation{PaymentIntentID: "pi_1"}, true)
		assert.ErrorIs(t, err, ErrDonationAlreadyRecorded)
	})

	t.Run("redelivery finishes a pending campaign adjustment", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:              "don_1",
				Amount:          5000,
				Currency:        "AUD",
				CampaignID:      "camp_1",
				CampaignApplied: false,
				EmailSent:       true,
			}, nil).
			Once()
		f.campaignsDAL.On("AdjustTotal", ctx, "camp_1", int64(5000)).
			Return(nil).
			Once()
		f.donationsDAL.On("SetCampaignApplied", ctx, "don_1").
			Return(nil).
			Once()
		f.pushDispatcher.On("Publish", ctx, "donations", mock.Anything, mock.Anything, mock.Anything).
			Return(nil).
			Once()

		_, err := s.RecordDonation(ctx, &domain.Donation{PaymentIntentID: "pi_1"}, true)
		assert.ErrorIs(t, err, ErrDonationAlreadyRecorded)
	})

	t.Run("redelivery sends a receipt the first delivery never sent", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:         "don_1",
				DonorName:  "Fatima Khan",
				DonorEmail: "fatima@example.org",
				Amount:     5000,
				Currency:   "AUD",
				EmailSent:  false,
			}, nil).
			Once()
		f.emailDispatcher.On("Send", ctx, mock.Anything, "fatima@example.org", mock.Anything).
			Return(nil).
			Once()
		f.donationsDAL.On("SetEmailSent", ctx, "don_1").
			Return(nil).
			Once()

		_, err := s.RecordDonation(ctx, &domain.Donation{PaymentIntentID: "pi_1"}, true)
		assert.ErrorIs(t, err, ErrDonationAlreadyRecorded)
	})

	t.Run("redelivery with every effect done changes nothing", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:              "don_1",
				DonorEmail:      "fatima@example.org",
				CampaignID:      "camp_1",
				CampaignApplied: true,
				EmailSent:       true,
			}, nil).
			Once()

		_, err := s.RecordDonation(ctx, &domain.Donation{PaymentIntentID: "pi_1"}, true)
		assert.ErrorIs(t, err, ErrDonationAlreadyRecorded)
	})

	t.Run("rejects a donation without payment intent", func(t *testing.T) {
		s, _ := newTestDonationService(t)

		_, err := s.RecordDonation(ctx, &domain.Donation{}, true)
		assert.ErrorIs(t, err, ErrMissingPaymentIntent)
	})

	t.Run("missing campaign is logged and does not fail the donation", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2026).
			Return(int64(1), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_1", nil).
			Once()
		f.campaignsDAL.On("AdjustTotal", ctx, "camp_gone", int64(1000)).
			Return(campaigndal.ErrCampaignNotFound).
			Once()
		f.emailDispatcher.On("Send", ctx, mock.Anything, "fatima@example.org", mock.Anything).
			Return(nil).
			Once()
		f.donationsDAL.On("SetEmailSent", ctx, "don_1").
			Return(nil).
			Once()

		donation, err := s.RecordDonation(ctx, &domain.Donation{
			DonorName:       "Fatima Khan",
			DonorEmail:      "fatima@example.org",
			Amount:          1000,
			Currency:        "AUD",
			CampaignID:      "camp_gone",
			PaymentIntentID: "pi_1",
		}, true)

		assert.NoError(t, err)
		assert.Equal(t, "don_1", donation.ID)
	})

	t.Run("suppressed receipt skips the email", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2026).
			Return(int64(2), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_2", nil).
			Once()

		donation, err := s.RecordDonation(ctx, &domain.Donation{
			DonorName:       "Fatima Khan",
			DonorEmail:      "fatima@example.org",
			Amount:          1000,
			Currency:        "AUD",
			PaymentIntentID: "pi_1",
		}, false)

		assert.NoError(t, err)
		assert.Equal(t, "RCP-2026-00002", donation.ReceiptNumber)
	})

	t.Run("anonymous donor gets a receipt number but no email", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2026).
			Return(int64(3), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_3", nil).
			Once()

		donation, err := s.RecordDonation(ctx, &domain.Donation{
			DonorName:       "Anonymous",
			DonorEmail:      "someone@example.org",
			Amount:          1000,
			Currency:        "AUD",
			PaymentIntentID: "pi_1",
		}, true)

		assert.NoError(t, err)
		assert.True(t, donation.Anonymous)
	})

	t.Run("email failure does not fail the donation", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2026).
			Return(int64(4), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_4", nil).
			Once()
		f.emailDispatcher.On("Send", ctx, mock.Anything, "fatima@example.org", mock.Anything).
			Return(errors.New("sendgrid unavailable")).
			Once()

		_, err := s.RecordDonation(ctx, &domain.Donation{
			DonorName:       "Fatima Khan",
			DonorEmail:      "fatima@example.org",
			Amount:          1000,
			Currency:        "AUD",
			PaymentIntentID: "pi_1",
		}, true)

		assert.NoError(t, err)
	})
}

func TestDonationService_ReceiptYearRollover(t *testing.T) {
	ctx := context.Background()

	sydney, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatal(err)
	}

	newServiceAt := func(t *testing.T, now time.Time) (*DonationService, *donationServiceFields) {
		s, f := newTestDonationService(t)
		s.settings = stubLocation{loc: sydney}
		s.now = func() time.Time { return now }

		return s, f
	}

	t.Run("a donation before local midnight stays on the old year's counter", func(t *testing.T) {
		// 12:00 UTC on Dec 31 is 23:00 the same day in Sydney (AEDT, UTC+11).
		s, f := newServiceAt(t, time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC))

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2024).
			Return(int64(412), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_1", nil).
			Once()

		donation, err := s.RecordDonation(ctx, &domain.Donation{
			Amount:          1000,
			Currency:        "AUD",
			PaymentIntentID: "pi_1",
		}, false)

		assert.NoError(t, err)
		assert.Equal(t, "RCP-2024-00412", donation.ReceiptNumber)
	})

	t.Run("a donation after local midnight restarts the sequence on the new year", func(t *testing.T) {
		// 14:30 UTC on Dec 31 is already 01:30 on Jan 1 in Sydney, so the
		// counter is keyed by the local year even though UTC is still 2024.
		s, f := newServiceAt(t, time.Date(2024, 12, 31, 14, 30, 0, 0, time.UTC))

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_2").
			Return(nil, dal.ErrDonationNotFound).
			Once()
		f.donationsDAL.On("NextReceiptNumber", ctx, 2025).
			Return(int64(1), nil).
			Once()
		f.donationsDAL.On("CreateDonation", ctx, mock.AnythingOfType("*domain.Donation")).
			Return("don_2", nil).
			Once()

		donation, err := s.RecordDonation(ctx, &domain.Donation{
			Amount:          1000,
			Currency:        "AUD",
			PaymentIntentID: "pi_2",
		}, false)

		assert.NoError(t, err)
		assert.Equal(t, "RCP-2025-00001", donation.ReceiptNumber)
	})
}

func TestDonationService_MarkRefunded(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds and rolls back the campaign total", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:         "don_1",
				Amount:     5000,
				CampaignID: "camp_1",
				Status:     domain.DonationStatusSucceeded,
			}, nil).
			Once()
		f.donationsDAL.On("SetRefunded", ctx, "don_1", int64(5000)).
			Return(nil).
			Once()
		f.campaignsDAL.On("AdjustTotal", ctx, "camp_1", int64(-5000)).
			Return(nil).
			Once()

		assert.NoError(t, s.MarkRefunded(ctx, "pi_1", 5000))
	})

	t.Run("partial refund only rolls back the refunded amount", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:         "don_1",
				Amount:     5000,
				CampaignID: "camp_1",
				Status:     domain.DonationStatusSucceeded,
			}, nil).
			Once()
		f.donationsDAL.On("SetRefunded", ctx, "don_1", int64(2000)).
			Return(nil).
			Once()
		f.campaignsDAL.On("AdjustTotal", ctx, "camp_1", int64(-2000)).
			Return(nil).
			Once()

		assert.NoError(t, s.MarkRefunded(ctx, "pi_1", 2000))
	})

	t.Run("zero refunded amount falls back to the full donation", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:     "don_1",
				Amount: 5000,
				Status: domain.DonationStatusSucceeded,
			}, nil).
			Once()
		f.donationsDAL.On("SetRefunded", ctx, "don_1", int64(5000)).
			Return(nil).
			Once()

		assert.NoError(t, s.MarkRefunded(ctx, "pi_1", 0))
	})

	t.Run("already refunded donation is a no-op", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:     "don_1",
				Status: domain.DonationStatusRefunded,
			}, nil).
			Once()

		assert.NoError(t, s.MarkRefunded(ctx, "pi_1", 5000))
	})

	t.Run("unknown payment intent surfaces the error", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_unknown").
			Return(nil, dal.ErrDonationNotFound).
			Once()

		assert.ErrorIs(t, s.MarkRefunded(ctx, "pi_unknown", 5000), dal.ErrDonationNotFound)
	})
}

func TestDonationService_MarkDisputed(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the donation to disputed", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:     "don_1",
				Status: domain.DonationStatusSucceeded,
			}, nil).
			Once()
		f.donationsDAL.On("UpdateDonationStatus", ctx, "don_1", domain.DonationStatusDisputed).
			Return(nil).
			Once()

		assert.NoError(t, s.MarkDisputed(ctx, "pi_1"))
	})

	t.Run("already disputed donation is a no-op", func(t *testing.T) {
		s, f := newTestDonationService(t)

		f.donationsDAL.On("GetDonationByPaymentIntent", ctx, "pi_1").
			Return(&domain.Donation{
				ID:     "don_1",
				Status: domain.DonationStatusDisputed,
			}, nil).
			Once()

		assert.NoError(t, s.MarkDisputed(ctx, "pi_1"))
	})
}
