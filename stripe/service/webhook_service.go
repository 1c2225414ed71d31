package service

import (
	"context"
	"time"

	stripe "github.com/stripe/stripe-go/v74"

	donationservice "github.com/masjidsuite/donations-service/donation/service"
	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/stripe/dal"
	subscriptionservice "github.com/masjidsuite/donations-service/subscription/service"
)

type eventHandler func(ctx context.Context, event *stripe.Event) error

// StripeWebhookService verifies, deduplicates and dispatches incoming
// webhook events to the donation and subscription services.
type StripeWebhookService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection

	stripeClient *Client

	eventsDAL     dal.WebhookEvents
	donations     DonationRecorder
	subscriptions SubscriptionManager

	handlers map[string]eventHandler

	// retryDelay is the base delay of the dispute lookup retry.
	retryDelay time.Duration
}

func NewStripeWebhookService(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	stripeClient *Client,
	donations *donationservice.DonationService,
	subscriptions *subscriptionservice.SubscriptionService,
) *StripeWebhookService {
	s := &StripeWebhookService{
		loggerProvider: loggerProvider,
		conn:           conn,
		stripeClient:   stripeClient,
		eventsDAL:      dal.NewWebhookEventsFirestore(conn.Firestore),
		donations:      donations,
		subscriptions:  subscriptions,
		retryDelay:     time.Second,
	}

	s.registerHandlers()

	return s
}

func (s *StripeWebhookService) registerHandlers() {
	s.handlers = map[string]eventHandler{
		"checkout.session.completed":    s.handleCheckoutSessionCompleted,
		"payment_intent.succeeded":      s.handlePaymentIntentSucceeded,
		"payment_intent.payment_failed": s.handlePaymentIntentFailed,
		"customer.subscription.created": s.handleSubscriptionCreated,
		"customer.subscription.updated": s.handleSubscriptionUpdated,
		"customer.subscription.deleted": s.handleSubscriptionDeleted,
		"invoice.payment_succeeded":     s.handleInvoicePaymentSucceeded,
		"invoice.payment_failed":        s.handleInvoicePaymentFailed,
		"charge.refunded":               s.handleChargeRefunded,
		"charge.dispute.created":        s.handleDisputeCreated,
	}
}
