package notification

import "context"

// Dispatcher sends a templated email with a flat data record. Callers treat
// send failures as best effort and only persist the returned success flag.
//
//go:generate mockery --name Dispatcher --output ./mocks
type Dispatcher interface {
	Send(ctx context.Context, templateID string, to string, data map[string]interface{}) error
}

// PushDispatcher fans out a push notification to a topic. Best effort.
//
//go:generate mockery --name PushDispatcher --output ./mocks
type PushDispatcher interface {
	Publish(ctx context.Context, topic string, title, body string, data map[string]string) error
}
