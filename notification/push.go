package notification

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// DonationsTopic receives a push message whenever a campaign donation is recorded.
const DonationsTopic = "donations"

// FCMDispatcher publishes push notifications through Firebase Cloud Messaging.
type FCMDispatcher struct {
	client *messaging.Client
}

func NewFCMDispatcher(ctx context.Context) (*FCMDispatcher, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return &FCMDispatcher{client: client}, nil
}

func (d *FCMDispatcher) Publish(ctx context.Context, topic string, title, body string, data map[string]string) error {
	_, err := d.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})

	return err
}
