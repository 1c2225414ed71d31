package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/sendgrid/rest"
	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/masjidsuite/donations-service/secretmanager"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <donations@masjidsuite.org>
	DonationsEmail string `json:"donations_email"`
	DonationsName  string `json:"donations_name"`
	// <noreply@masjidsuite.org>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`

	// Dynamic templates IDs
	DynamicTemplates DynamicTemplates `json:"dynamic_templates"`
}

type DynamicTemplates struct {
	DonationReceipt          string `json:"donation_receipt"`
	RecurringDonationReceipt string `json:"recurring_donation_receipt"`
	SubscriptionWelcome      string `json:"subscription_welcome"`
	SubscriptionPastDue      string `json:"subscription_past_due"`
	SubscriptionCancelled    string `json:"subscription_cancelled"`
}

// Config : Sendgrid configuration
var Config SendGridConfig

var loadOnce sync.Once

// LoadConfig reads the sendgrid secret once and populates Config. Call it
// during startup before sending any mail.
func LoadConfig(ctx context.Context) error {
	var err error

	loadOnce.Do(func() {
		var secretData []byte

		secretData, err = secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
		if err != nil {
			return
		}

		err = json.Unmarshal(secretData, &Config)
	})

	return err
}

// SendEmailWithTemplate sends a sendgrid dynamic template email to a single
// recipient with the given flat template data.
func SendEmailWithTemplate(templateID string, params map[string]interface{}, email string) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(templateID)
	m.SetFrom(mail.NewEmail(Config.DonationsName, Config.DonationsEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	tos := []*mail.Email{
		mail.NewEmail("", email),
	}
	personalization.AddTos(tos...)

	for key, param := range params {
		personalization.SetDynamicTemplateData(key, param)
	}

	m.AddPersonalizations(personalization)

	request := sendgrid.GetRequest(Config.APIKey, Config.MailSendPath, Config.BaseURL)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetry(request)
	if err != nil {
		return err
	}

	return checkResponse(response)
}

// checkResponse surfaces non-2xx sendgrid responses, which MakeRequestRetry
// reports with a nil error.
func checkResponse(response *rest.Response) error {
	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
