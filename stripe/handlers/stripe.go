package handlers

import (
	"context"

	donationservice "github.com/masjidsuite/donations-service/donation/service"
	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/notification"
	settingsservice "github.com/masjidsuite/donations-service/settings/service"
	"github.com/masjidsuite/donations-service/stripe/service"
	subscriptionservice "github.com/masjidsuite/donations-service/subscription/service"
)

type webhookService interface {
	HandleEvent(ctx context.Context, body []byte, signature string) error
}

// Stripe holds the webhook HTTP handlers.
type Stripe struct {
	loggerProvider logger.Provider
	service        webhookService
}

func NewStripe(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) (*Stripe, error) {
	stripeClient, err := service.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	emailDispatcher, err := notification.NewEmailDispatcher(ctx)
	if err != nil {
		return nil, err
	}

	pushDispatcher, err := notification.NewFCMDispatcher(ctx)
	if err != nil {
		return nil, err
	}

	settings := settingsservice.NewSettingsService(loggerProvider, conn)
	donations := donationservice.NewDonationService(loggerProvider, conn, emailDispatcher, pushDispatcher, settings)
	subscriptions := subscriptionservice.NewSubscriptionService(loggerProvider, conn, emailDispatcher, settings)

	return &Stripe{
		loggerProvider: loggerProvider,
		service:        service.NewStripeWebhookService(loggerProvider, conn, stripeClient, donations, subscriptions),
	}, nil
}
