package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	campaigndal "github.com/masjidsuite/donations-service/campaign/dal"
	"github.com/masjidsuite/donations-service/common"
	"github.com/masjidsuite/donations-service/donation/dal"
	"github.com/masjidsuite/donations-service/donation/domain"
	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/mailer"
	"github.com/masjidsuite/donations-service/notification"
)

// timezoneService resolves the mosque timezone; satisfied by
// settings/service.SettingsService.
type timezoneService interface {
	Location(ctx context.Context) *time.Location
}

// DonationService owns donation records, receipt numbering and the
// campaign total side effects of settled payments.
type DonationService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection

	donationsDAL dal.Donations
	campaignsDAL campaigndal.Campaigns

	emailDispatcher notification.Dispatcher
	pushDispatcher  notification.PushDispatcher
	settings        timezoneService

	now func() time.Time
}

func NewDonationService(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	emailDispatcher notification.Dispatcher,
	pushDispatcher notification.PushDispatcher,
	settings timezoneService,
) *DonationService {
	return &DonationService{
		loggerProvider:  loggerProvider,
		conn:            conn,
		donationsDAL:    dal.NewDonationsFirestore(conn.Firestore),
		campaignsDAL:    campaigndal.NewCampaignsFirestore(conn.Firestore),
		emailDispatcher: emailDispatcher,
		pushDispatcher:  pushDispatcher,
		settings:        settings,
		now:             time.Now,
	}
}

// HasDonationForPaymentIntent reports whether a donation already references
// the given payment intent.
func (s *DonationService) HasDonationForPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error) {
	_, err := s.donationsDAL.GetDonationByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, dal.ErrDonationNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// RecordDonation persists a settled donation: assigns the receipt number,
// classifies anonymity, updates the campaign total and sends the receipt
// email. Email and push failures are logged and do not fail the record.
// sendReceipt false suppresses the receipt email but still numbers the
// donation.
//
// A payment intent already in the ledger returns ErrDonationAlreadyRecorded,
// but first finishes any side effect the earlier delivery left pending, so a
// redelivered event converges instead of skipping.
func (s *DonationService) RecordDonation(ctx context.Context, donation *domain.Donation, sendReceipt bool) (*domain.Donation, error) {
	if donation.PaymentIntentID == "" {
		return nil, ErrMissingPaymentIntent
	}

	existing, err := s.donationsDAL.GetDonationByPaymentIntent(ctx, donation.PaymentIntentID)
	if err != nil && !errors.Is(err, dal.ErrDonationNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.resumePendingEffects(ctx, existing, sendReceipt); err != nil {
			return nil, err
		}

		return existing, ErrDonationAlreadyRecorded
	}

	donation.Anonymous = IsAnonymousDonor(donation.DonorName, donation.DonorEmail)
	donation.Status = domain.DonationStatusSucceeded

	receiptNumber, err := s.nextReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	donation.ReceiptNumber = receiptNumber

	donationID, err := s.donationsDAL.CreateDonation(ctx, donation)
	if err != nil {
		return nil, err
	}

	donation.ID = donationID

	if donation.CampaignID != "" {
		if err := s.applyCampaignTotal(ctx, donation); err != nil {
			return nil, err
		}
	}

	if sendReceipt {
		s.sendReceiptEmail(ctx, donation)
	}

	return donation, nil
}

// resumePendingEffects reruns the side effects a partially executed delivery
// skipped: the campaign adjustment and the receipt email each leave a
// persisted flag, so only what is still pending runs again.
func (s *DonationService) resumePendingEffects(ctx context.Context, donation *domain.Donation, sendReceipt bool) error {
	l := s.loggerProvider(ctx)

	if donation.CampaignID != "" && !donation.CampaignApplied {
		l.Infof("donation %s redelivered with pending campaign adjustment", donation.ID)

		if err := s.applyCampaignTotal(ctx, donation); err != nil {
			return err
		}
	}

	if sendReceipt && !donation.EmailSent {
		s.sendReceiptEmail(ctx, donation)
	}

	return nil
}

// applyCampaignTotal rolls the donation into its campaign total and flags the
// donation so a redelivery does not double-count. A missing campaign is
// logged and the donation kept.
func (s *DonationService) applyCampaignTotal(ctx context.Context, donation *domain.Donation) error {
	l := s.loggerProvider(ctx)

	if err := s.campaignsDAL.AdjustTotal(ctx, donation.CampaignID, donation.Amount); err != nil {
		if errors.Is(err, campaigndal.ErrCampaignNotFound) {
			l.Warningf("donation %s references missing campaign %s", donation.ID, donation.CampaignID)
			return nil
		}

		return err
	}

	if err := s.donationsDAL.SetCampaignApplied(ctx, donation.ID); err != nil {
		l.Errorf("failed to flag campaign adjustment for donation %s: %s", donation.ID, err)
	}

	donation.CampaignApplied = true

	s.notifyCampaignDonation(ctx, donation)

	return nil
}

// MarkRefunded flips a donation to refunded, records the refunded amount and
// rolls it out of the campaign total. A zero amountRefunded falls back to the
// full donation amount. Already-refunded donations are left untouched.
func (s *DonationService) MarkRefunded(ctx context.Context, paymentIntentID string, amountRefunded int64) error {
	l := s.loggerProvider(ctx)

	donation, err := s.donationsDAL.GetDonationByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}

	if donation.Status == domain.DonationStatusRefunded {
		l.Infof("donation %s already refunded, skipping", donation.ID)
		return nil
	}

	if amountRefunded <= 0 {
		amountRefunded = donation.Amount
	}

	if err := s.donationsDAL.SetRefunded(ctx, donation.ID, amountRefunded); err != nil {
		return err
	}

	if donation.CampaignID != "" {
		if err := s.campaignsDAL.AdjustTotal(ctx, donation.CampaignID, -amountRefunded); err != nil {
			if errors.Is(err, campaigndal.ErrCampaignNotFound) {
				l.Warningf("refunded donation %s references missing campaign %s", donation.ID, donation.CampaignID)
				return nil
			}

			return err
		}
	}

	return nil
}

// MarkDisputed flips a donation to disputed. The donation may lag the dispute
// webhook; callers retry on ErrDonationNotFound.
func (s *DonationService) MarkDisputed(ctx context.Context, paymentIntentID string) error {
	donation, err := s.donationsDAL.GetDonationByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}

	if donation.Status == domain.DonationStatusDisputed {
		return nil
	}

	return s.donationsDAL.UpdateDonationStatus(ctx, donation.ID, domain.DonationStatusDisputed)
}

func (s *DonationService) nextReceiptNumber(ctx context.Context) (string, error) {
	year := s.now().In(s.settings.Location(ctx)).Year()

	seq, err := s.donationsDAL.NextReceiptNumber(ctx, year)
	if err != nil {
		return "", err
	}

	return FormatReceiptNumber(year, seq), nil
}

// FormatReceiptNumber renders the yearly receipt sequence, e.g. RCP-2026-00042.
func FormatReceiptNumber(year int, seq int64) string {
	return fmt.Sprintf("RCP-%d-%05d", year, seq)
}

func (s *DonationService) sendReceiptEmail(ctx context.Context, donation *domain.Donation) {
	l := s.loggerProvider(ctx)

	if donation.DonorEmail == "" || donation.Anonymous {
		return
	}

	templateID := mailer.Config.DynamicTemplates.DonationReceipt
	if donation.IsRecurring {
		templateID = mailer.Config.DynamicTemplates.RecurringDonationReceipt
	}

	p := message.NewPrinter(language.English)

	data := map[string]interface{}{
		"donor_name":     donation.DonorName,
		"receipt_number": donation.ReceiptNumber,
		"amount":         common.FormatCurrencyAmountInt64(p, donation.Amount, donation.Currency),
		"fund":           donation.Fund,
		"date":           s.now().In(s.settings.Location(ctx)).Format("2 January 2006"),
	}

	if err := s.emailDispatcher.Send(ctx, templateID, donation.DonorEmail, data); err != nil {
		l.Errorf("failed to send receipt email for donation %s: %s", donation.ID, err)
		return
	}

	if err := s.donationsDAL.SetEmailSent(ctx, donation.ID); err != nil {
		l.Errorf("failed to flag receipt email for donation %s: %s", donation.ID, err)
	}
}

func (s *DonationService) notifyCampaignDonation(ctx context.Context, donation *domain.Donation) {
	l := s.loggerProvider(ctx)

	if s.pushDispatcher == nil {
		return
	}

	p := message.NewPrinter(language.English)
	amount := common.FormatCurrencyAmountInt64(p, donation.Amount, donation.Currency)

	donorName := donation.DonorName
	if donation.Anonymous {
		donorName = "An anonymous donor"
	}

	err := s.pushDispatcher.Publish(ctx, notification.DonationsTopic,
		"New campaign donation",
		fmt.Sprintf("%s donated %s", donorName, amount),
		map[string]string{"campaignId": donation.CampaignID},
	)
	if err != nil {
		l.Warningf("failed to publish donation notification: %s", err)
	}
}
