package service

import (
	"context"
	"encoding/json"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/masjidsuite/donations-service/secretmanager"
)

type stripeSecret struct {
	APIKey            string `json:"api_key"`
	WebhookSigningKey string `json:"webhook_signing_key"`
}

// Client wraps the stripe API client together with the webhook signing key.
type Client struct {
	*client.API
	webhookSignKey string
}

func NewClient(ctx context.Context) (*Client, error) {
	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripe)
	if err != nil {
		return nil, err
	}

	var secret stripeSecret
	if err := json.Unmarshal(secretData, &secret); err != nil {
		return nil, err
	}

	stripe.SetAppInfo(&stripe.AppInfo{
		Name: "masjidsuite-donations",
	})

	api := &client.API{}
	api.Init(secret.APIKey, nil)

	return &Client{
		API:            api,
		webhookSignKey: secret.WebhookSigningKey,
	}, nil
}
