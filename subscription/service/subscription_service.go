package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/masjidsuite/donations-service/common"
	donationdal "github.com/masjidsuite/donations-service/donation/dal"
	donationdomain "github.com/masjidsuite/donations-service/donation/domain"
	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/mailer"
	"github.com/masjidsuite/donations-service/notification"
	"github.com/masjidsuite/donations-service/subscription/dal"
	"github.com/masjidsuite/donations-service/subscription/domain"
)

// timezoneService resolves the mosque timezone; satisfied by
// settings/service.SettingsService.
type timezoneService interface {
	Location(ctx context.Context) *time.Location
}

// subscriptionDonations reads the donation records a plan produced;
// satisfied by donation/dal.DonationsFirestore.
type subscriptionDonations interface {
	GetDonationsBySubscription(ctx context.Context, subscriptionID string) ([]*donationdomain.Donation, error)
}

// SubscriptionService owns recurring giving plans and their lifecycle emails.
type SubscriptionService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection

	subscriptionsDAL dal.Subscriptions
	donationsDAL     subscriptionDonations

	emailDispatcher notification.Dispatcher
	settings        timezoneService

	now func() time.Time
}

func NewSubscriptionService(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	emailDispatcher notification.Dispatcher,
	settings timezoneService,
) *SubscriptionService {
	return &SubscriptionService{
		loggerProvider:   loggerProvider,
		conn:             conn,
		subscriptionsDAL: dal.NewSubscriptionsFirestore(conn.Firestore),
		donationsDAL:     donationdal.NewDonationsFirestore(conn.Firestore),
		emailDispatcher:  emailDispatcher,
		settings:         settings,
		now:              time.Now,
	}
}

// Create registers a new recurring plan and sends the welcome email.
// Creating the same subscription again overwrites the record with identical
// data, so replays are harmless.
func (s *SubscriptionService) Create(ctx context.Context, subscription *domain.RecurringDonation) error {
	l := s.loggerProvider(ctx)

	subscription.Status = domain.SubscriptionStatusActive

	if subscription.NextPaymentDate.IsZero() {
		next, err := NextPaymentDate(s.now(), subscription.Frequency, s.settings.Location(ctx))
		if err != nil {
			return err
		}

		subscription.NextPaymentDate = next
	}

	if err := s.subscriptionsDAL.SaveSubscription(ctx, subscription); err != nil {
		return err
	}

	if subscription.DonorEmail != "" {
		data := s.emailData(ctx, subscription)
		if err := s.emailDispatcher.Send(ctx, mailer.Config.DynamicTemplates.SubscriptionWelcome, subscription.DonorEmail, data); err != nil {
			l.Errorf("failed to send welcome email for subscription %s: %s", subscription.ID, err)
		}
	}

	return nil
}

// RecordInstallment rolls a settled billing cycle into the plan: bumps the
// lifetime totals, advances the next payment date and reactivates a past-due
// plan.
func (s *SubscriptionService) RecordInstallment(ctx context.Context, subscriptionID string, amount int64, paidAt time.Time, invoiceID string) error {
	subscription, err := s.subscriptionsDAL.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return err
	}

	next, err := NextPaymentDate(paidAt, subscription.Frequency, s.settings.Location(ctx))
	if err != nil {
		return err
	}

	return s.subscriptionsDAL.RecordInstallment(ctx, subscriptionID, amount, next, invoiceID)
}

// MarkPastDue flips the plan to past due, bumps the failure-attempt counter
// and notifies the donor. Each failed billing attempt lands here, so a plan
// already past due keeps counting attempts.
func (s *SubscriptionService) MarkPastDue(ctx context.Context, subscriptionID string, reason string) error {
	l := s.loggerProvider(ctx)

	subscription, err := s.subscriptionsDAL.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return err
	}

	if subscription.Status == domain.SubscriptionStatusCancelled {
		l.Infof("subscription %s already cancelled, ignoring payment failure", subscriptionID)
		return nil
	}

	attempts, err := s.subscriptionsDAL.MarkPastDue(ctx, subscriptionID, reason)
	if err != nil {
		return err
	}

	l.Warningf("subscription %s past due after %d failed attempt(s): %s", subscriptionID, attempts, reason)

	if subscription.DonorEmail != "" {
		data := s.emailData(ctx, subscription)
		data["failed_attempts"] = attempts

		if err := s.emailDispatcher.Send(ctx, mailer.Config.DynamicTemplates.SubscriptionPastDue, subscription.DonorEmail, data); err != nil {
			l.Errorf("failed to send past-due email for subscription %s: %s", subscriptionID, err)
		}
	}

	return nil
}

// ApplyUpdate reconciles a provider-side subscription update. Updates that
// change nothing we track are ignored, so replays and unrelated metadata
// updates are no-ops.
func (s *SubscriptionService) ApplyUpdate(ctx context.Context, update *domain.RecurringDonation) error {
	l := s.loggerProvider(ctx)

	existing, err := s.subscriptionsDAL.GetSubscription(ctx, update.ID)
	if err != nil {
		if errors.Is(err, dal.ErrSubscriptionNotFound) {
			l.Warningf("update for unknown subscription %s, creating it", update.ID)
			return s.Create(ctx, update)
		}

		return err
	}

	if existing.Status == domain.SubscriptionStatusCancelled {
		l.Infof("subscription %s already cancelled, ignoring update", update.ID)
		return nil
	}

	if existing.Amount == update.Amount &&
		existing.Frequency == update.Frequency &&
		existing.Status == update.Status {
		return nil
	}

	update.LifetimeTotal = existing.LifetimeTotal
	update.InstallmentCount = existing.InstallmentCount
	update.LastInvoiceID = existing.LastInvoiceID
	update.FailureAttempts = existing.FailureAttempts
	update.LastError = existing.LastError

	if update.NextPaymentDate.IsZero() {
		update.NextPaymentDate = existing.NextPaymentDate
	}

	return s.subscriptionsDAL.SaveSubscription(ctx, update)
}

// Cancel closes the plan and sends the cancellation email with the lifetime
// giving total.
func (s *SubscriptionService) Cancel(ctx context.Context, subscriptionID string, cancelledAt time.Time) error {
	l := s.loggerProvider(ctx)

	subscription, err := s.subscriptionsDAL.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return err
	}

	if subscription.Status == domain.SubscriptionStatusCancelled {
		return nil
	}

	if err := s.subscriptionsDAL.CancelSubscription(ctx, subscriptionID, cancelledAt); err != nil {
		return err
	}

	if subscription.DonorEmail != "" {
		p := message.NewPrinter(language.English)

		data := s.emailData(ctx, subscription)
		data["lifetime_total"] = common.FormatCurrencyAmountInt64(p, s.lifetimeTotal(ctx, subscription), subscription.Currency)
		data["installments"] = subscription.InstallmentCount

		if err := s.emailDispatcher.Send(ctx, mailer.Config.DynamicTemplates.SubscriptionCancelled, subscription.DonorEmail, data); err != nil {
			l.Errorf("failed to send cancellation email for subscription %s: %s", subscriptionID, err)
		}
	}

	return nil
}

// lifetimeTotal sums the plan's settled donation records. The rolling total
// on the plan is the fallback when the query fails.
func (s *SubscriptionService) lifetimeTotal(ctx context.Context, subscription *domain.RecurringDonation) int64 {
	l := s.loggerProvider(ctx)

	donations, err := s.donationsDAL.GetDonationsBySubscription(ctx, subscription.ID)
	if err != nil {
		l.Errorf("failed to sum donations for subscription %s: %s", subscription.ID, err)
		return subscription.LifetimeTotal
	}

	var total int64

	for _, donation := range donations {
		if donation.Status == donationdomain.DonationStatusSucceeded {
			total += donation.Amount
		}
	}

	return total
}

func (s *SubscriptionService) emailData(ctx context.Context, subscription *domain.RecurringDonation) map[string]interface{} {
	p := message.NewPrinter(language.English)

	return map[string]interface{}{
		"donor_name":        subscription.DonorName,
		"amount":            common.FormatCurrencyAmountInt64(p, subscription.Amount, subscription.Currency),
		"frequency":         string(subscription.Frequency),
		"fund":              subscription.Fund,
		"next_payment_date": subscription.NextPaymentDate.In(s.settings.Location(ctx)).Format("2 January 2006"),
	}
}
