package notification

import (
	"context"

	"github.com/masjidsuite/donations-service/mailer"
)

// EmailDispatcher sends transactional emails through sendgrid dynamic templates.
type EmailDispatcher struct {
}

func NewEmailDispatcher(ctx context.Context) (*EmailDispatcher, error) {
	if err := mailer.LoadConfig(ctx); err != nil {
		return nil, err
	}

	return &EmailDispatcher{}, nil
}

func (d *EmailDispatcher) Send(ctx context.Context, templateID string, to string, data map[string]interface{}) error {
	return mailer.SendEmailWithTemplate(templateID, data, to)
}
