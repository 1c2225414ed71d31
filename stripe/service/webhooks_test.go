package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74/webhook"

	donationdal "github.com/masjidsuite/donations-service/donation/dal"
	donationdomain "github.com/masjidsuite/donations-service/donation/domain"
	donationservice "github.com/masjidsuite/donations-service/donation/service"
	"github.com/masjidsuite/donations-service/logger"
	"github.com/masjidsuite/donations-service/stripe/dal"
	dalmocks "github.com/masjidsuite/donations-service/stripe/dal/mocks"
	"github.com/masjidsuite/donations-service/stripe/domain"
	"github.com/masjidsuite/donations-service/stripe/service/mocks"
	subscriptiondomain "github.com/masjidsuite/donations-service/subscription/domain"
)

const testSigningKey = "whsec_test_secret"

func testLoggerProvider(ctx context.Context) logger.ILogger {
	return &logger.Logger{}
}

type webhookServiceFields struct {
	eventsDAL     *dalmocks.WebhookEvents
	donations     *mocks.DonationRecorder
	subscriptions *mocks.SubscriptionManager
}

func newTestWebhookService(t *testing.T) (*StripeWebhookService, *webhookServiceFields) {
	f := &webhookServiceFields{
		eventsDAL:     dalmocks.NewWebhookEvents(t),
		donations:     mocks.NewDonationRecorder(t),
		subscriptions: mocks.NewSubscriptionManager(t),
	}

	s := &StripeWebhookService{
		loggerProvider: testLoggerProvider,
		stripeClient:   &Client{webhookSignKey: testSigningKey},
		eventsDAL:      f.eventsDAL,
		donations:      f.donations,
		subscriptions:  f.subscriptions,
		retryDelay:     time.Millisecond,
	}

	s.registerHandlers()

	return s, f
}

func signedBody(t *testing.T, eventID, eventType string, object map[string]interface{}) ([]byte, string) {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"id":          eventID,
		"object":      "event",
		"api_version": "2022-11-15",
		"type":        eventType,
		"data": map[string]interface{}{
			"object": object,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Now()
	sig := webhook.ComputeSignature(ts, body, testSigningKey)
	header := fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(sig))

	return body, header
}

func expectLedger(f *webhookServiceFields, ctx context.Context, eventID, eventType string) {
	f.eventsDAL.On("GetEvent", ctx, eventID).
		Return(nil, dal.ErrEventNotFound).
		Once()
	f.eventsDAL.On("MarkStarted", ctx, eventID, eventType).
		Return(&domain.WebhookEventRecord{
			ID:       eventID,
			Type:     eventType,
			Status:   domain.WebhookEventStatusStarted,
			Attempts: 1,
		}, nil).
		Once()
}

func TestHandleEvent_Verification(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty payload", func(t *testing.T) {
		s, _ := newTestWebhookService(t)

		err := s.HandleEvent(ctx, nil, "t=1,v1=deadbeef")
		assert.ErrorIs(t, err, ErrEmptyPayload)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		s, _ := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{"id": "ch_1"})
		body = append(body, ' ')

		err := s.HandleEvent(ctx, body, header)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("rejects a signature from another key", func(t *testing.T) {
		s, _ := newTestWebhookService(t)

		body, err := json.Marshal(map[string]interface{}{"id": "evt_1", "type": "charge.refunded"})
		if err != nil {
			t.Fatal(err)
		}

		ts := time.Now()
		sig := webhook.ComputeSignature(ts, body, "whsec_other")
		header := fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(sig))

		assert.ErrorIs(t, s.HandleEvent(ctx, body, header), ErrInvalidSignature)
	})

	t.Run("rejects a missing signature header", func(t *testing.T) {
		s, _ := newTestWebhookService(t)

		body, _ := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{"id": "ch_1"})

		assert.ErrorIs(t, s.HandleEvent(ctx, body, ""), ErrInvalidSignature)
	})
}

func TestHandleEvent_Idempotency(t *testing.T) {
	ctx := context.Background()

	t.Run("unhandled event types are acknowledged without the ledger", func(t *testing.T) {
		s, _ := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "customer.created", map[string]interface{}{"id": "cus_1"})

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("completed events are acknowledged without re-processing", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{
			"id":             "ch_1",
			"payment_intent": "pi_1",
		})

		f.eventsDAL.On("GetEvent", ctx, "evt_1").
			Return(&domain.WebhookEventRecord{
				ID:     "evt_1",
				Status: domain.WebhookEventStatusCompleted,
			}, nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("a concurrent completion during claim is acknowledged", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{
			"id":             "ch_1",
			"payment_intent": "pi_1",
		})

		f.eventsDAL.On("GetEvent", ctx, "evt_1").
			Return(nil, dal.ErrEventNotFound).
			Once()
		f.eventsDAL.On("MarkStarted", ctx, "evt_1", "charge.refunded").
			Return(nil, dal.ErrEventAlreadyProcessed).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("a failing handler marks the event failed and surfaces the error", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{
			"id":             "ch_1",
			"payment_intent": "pi_1",
		})

		processErr := errors.New("firestore unavailable")

		expectLedger(f, ctx, "evt_1", "charge.refunded")
		f.donations.On("MarkRefunded", ctx, "pi_1", mock.Anything).
			Return(processErr).
			Once()
		f.eventsDAL.On("MarkFailed", ctx, "evt_1", processErr).
			Return(nil).
			Once()

		assert.ErrorIs(t, s.HandleEvent(ctx, body, header), processErr)
	})
}

func TestHandleEvent_CheckoutSessionCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("records a one-time donation", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "checkout.session.completed", map[string]interface{}{
			"id":             "cs_1",
			"mode":           "payment",
			"amount_total":   5000,
			"currency":       "aud",
			"payment_intent": "pi_1",
			"customer_details": map[string]interface{}{
				"name":  "Fatima Khan",
				"email": "fatima@example.org",
			},
			"metadata": map[string]interface{}{
				"campaignId": "camp_1",
				"fund":       "zakat",
			},
		})

		expectLedger(f, ctx, "evt_1", "checkout.session.completed")
		f.donations.On("RecordDonation", ctx, mock.MatchedBy(func(d *donationdomain.Donation) bool {
			return d.PaymentIntentID == "pi_1" &&
				d.CheckoutSessionID == "cs_1" &&
				d.Amount == 5000 &&
				d.Currency == "AUD" &&
				d.CampaignID == "camp_1" &&
				d.Fund == "zakat" &&
				d.DonorName == "Fatima Khan" &&
				d.DonorEmail == "fatima@example.org"
		}), true).
			Return(&donationdomain.Donation{ID: "don_1"}, nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("subscription mode checkouts are skipped", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "checkout.session.completed", map[string]interface{}{
			"id":           "cs_1",
			"mode":         "subscription",
			"subscription": "sub_1",
		})

		expectLedger(f, ctx, "evt_1", "checkout.session.completed")
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("an already recorded donation still completes the event", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "checkout.session.completed", map[string]interface{}{
			"id":             "cs_1",
			"mode":           "payment",
			"amount_total":   5000,
			"currency":       "aud",
			"payment_intent": "pi_1",
		})

		expectLedger(f, ctx, "evt_1", "checkout.session.completed")
		f.donations.On("RecordDonation", ctx, mock.Anything, true).
			Return(nil, donationservice.ErrDonationAlreadyRecorded).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})
}

func TestHandleEvent_PaymentIntentSucceeded(t *testing.T) {
	ctx := context.Background()

	t.Run("records a direct donation", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "payment_intent.succeeded", map[string]interface{}{
			"id":            "pi_1",
			"amount":        2500,
			"currency":      "aud",
			"receipt_email": "fatima@example.org",
			"metadata": map[string]interface{}{
				"donorName": "Fatima Khan",
			},
		})

		expectLedger(f, ctx, "evt_1", "payment_intent.succeeded")
		f.donations.On("HasDonationForPaymentIntent", ctx, "pi_1").
			Return(false, nil).
			Once()
		f.donations.On("RecordDonation", ctx, mock.MatchedBy(func(d *donationdomain.Donation) bool {
			return d.PaymentIntentID == "pi_1" &&
				d.Amount == 2500 &&
				d.DonorName == "Fatima Khan" &&
				d.DonorEmail == "fatima@example.org"
		}), true).
			Return(&donationdomain.Donation{ID: "don_1"}, nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("invoice-backed payments are skipped", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "payment_intent.succeeded", map[string]interface{}{
			"id":      "pi_1",
			"amount":  2500,
			"invoice": "in_1",
		})

		expectLedger(f, ctx, "evt_1", "payment_intent.succeeded")
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("payments already recorded by checkout are skipped", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "payment_intent.succeeded", map[string]interface{}{
			"id":     "pi_1",
			"amount": 2500,
		})

		expectLedger(f, ctx, "evt_1", "payment_intent.succeeded")
		f.donations.On("HasDonationForPaymentIntent", ctx, "pi_1").
			Return(true, nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})
}

func TestHandleEvent_Invoices(t *testing.T) {
	ctx := context.Background()

	t.Run("a renewal invoice records an installment with receipt", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "invoice.payment_succeeded", map[string]interface{}{
			"id":             "in_2",
			"amount_paid":    2500,
			"currency":       "aud",
			"billing_reason": "subscription_cycle",
			"customer_name":  "Fatima Khan",
			"customer_email": "fatima@example.org",
			"subscription":   "sub_1",
			"payment_intent": "pi_2",
			"status_transitions": map[string]interface{}{
				"paid_at": 1767998400,
			},
			"lines": map[string]interface{}{
				"data": []map[string]interface{}{
					{
						"price": map[string]interface{}{
							"recurring": map[string]interface{}{
								"interval":       "month",
								"interval_count": 1,
							},
						},
					},
				},
			},
		})

		expectLedger(f, ctx, "evt_1", "invoice.payment_succeeded")
		f.donations.On("RecordDonation", ctx, mock.MatchedBy(func(d *donationdomain.Donation) bool {
			return d.IsRecurring &&
				d.Frequency == "monthly" &&
				d.SubscriptionID == "sub_1" &&
				d.InvoiceID == "in_2" &&
				d.PaymentIntentID == "pi_2" &&
				d.Amount == 2500
		}), true).
			Return(&donationdomain.Donation{ID: "don_2"}, nil).
			Once()
		f.subscriptions.On("RecordInstallment", ctx, "sub_1", int64(2500), time.Unix(1767998400, 0), "in_2").
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("the first invoice of a new plan suppresses the receipt email", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "invoice.payment_succeeded", map[string]interface{}{
			"id":             "in_1",
			"amount_paid":    2500,
			"currency":       "aud",
			"billing_reason": "subscription_create",
			"subscription":   "sub_1",
			"payment_intent": "pi_1",
		})

		expectLedger(f, ctx, "evt_1", "invoice.payment_succeeded")
		f.donations.On("RecordDonation", ctx, mock.Anything, false).
			Return(&donationdomain.Donation{ID: "don_1"}, nil).
			Once()
		f.subscriptions.On("RecordInstallment", ctx, "sub_1", int64(2500), mock.Anything, "in_1").
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("a redelivered invoice still reconciles the plan", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "invoice.payment_succeeded", map[string]interface{}{
			"id":             "in_2",
			"amount_paid":    2500,
			"currency":       "aud",
			"billing_reason": "subscription_cycle",
			"subscription":   "sub_1",
			"payment_intent": "pi_2",
		})

		expectLedger(f, ctx, "evt_1", "invoice.payment_succeeded")
		f.donations.On("RecordDonation", ctx, mock.Anything, true).
			Return(nil, donationservice.ErrDonationAlreadyRecorded).
			Once()
		f.subscriptions.On("RecordInstallment", ctx, "sub_1", int64(2500), mock.Anything, "in_2").
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("a one-off invoice is skipped", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "invoice.payment_succeeded", map[string]interface{}{
			"id":          "in_1",
			"amount_paid": 2500,
		})

		expectLedger(f, ctx, "evt_1", "invoice.payment_succeeded")
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("a failed invoice marks the plan past due", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "invoice.payment_failed", map[string]interface{}{
			"id":           "in_3",
			"subscription": "sub_1",
		})

		expectLedger(f, ctx, "evt_1", "invoice.payment_failed")
		f.subscriptions.On("MarkPastDue", ctx, "sub_1", "invoice payment failed").
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})
}

func TestHandleEvent_Subscriptions(t *testing.T) {
	ctx := context.Background()

	subscriptionObject := func(status string) map[string]interface{} {
		return map[string]interface{}{
			"id":                 "sub_1",
			"status":             status,
			"customer":           "cus_1",
			"current_period_end": 1770652800,
			"metadata": map[string]interface{}{
				"donorName":  "Fatima Khan",
				"donorEmail": "fatima@example.org",
				"fund":       "zakat",
			},
			"items": map[string]interface{}{
				"data": []interface{}{
					map[string]interface{}{
						"id": "si_1",
						"price": map[string]interface{}{
							"id":          "price_1",
							"unit_amount": 2500,
							"currency":    "aud",
							"recurring": map[string]interface{}{
								"interval":       "month",
								"interval_count": 1,
							},
						},
					},
				},
			},
		}
	}

	t.Run("created registers a monthly plan", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "customer.subscription.created", subscriptionObject("active"))

		expectLedger(f, ctx, "evt_1", "customer.subscription.created")
		f.subscriptions.On("Create", ctx, mock.MatchedBy(func(plan *subscriptiondomain.RecurringDonation) bool {
			return plan.ID == "sub_1" &&
				plan.Amount == 2500 &&
				plan.Currency == "AUD" &&
				plan.Frequency == subscriptiondomain.FrequencyMonthly &&
				plan.DonorEmail == "fatima@example.org" &&
				plan.CustomerID == "cus_1"
		})).
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("updated applies the change", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "customer.subscription.updated", subscriptionObject("past_due"))

		expectLedger(f, ctx, "evt_1", "customer.subscription.updated")
		f.subscriptions.On("ApplyUpdate", ctx, mock.MatchedBy(func(plan *subscriptiondomain.RecurringDonation) bool {
			return plan.ID == "sub_1" && plan.Status == subscriptiondomain.SubscriptionStatusPastDue
		})).
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("deleted cancels the plan", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		object := subscriptionObject("canceled")
		object["canceled_at"] = 1770652800

		body, header := signedBody(t, "evt_1", "customer.subscription.deleted", object)

		expectLedger(f, ctx, "evt_1", "customer.subscription.deleted")
		f.subscriptions.On("Cancel", ctx, "sub_1", time.Unix(1770652800, 0)).
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})
}

func TestHandleEvent_Disputes(t *testing.T) {
	ctx := context.Background()

	disputeObject := map[string]interface{}{
		"id":             "dp_1",
		"payment_intent": "pi_1",
	}

	t.Run("retries the lookup until the donation lands", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.dispute.created", disputeObject)

		expectLedger(f, ctx, "evt_1", "charge.dispute.created")
		f.donations.On("MarkDisputed", ctx, "pi_1").
			Return(donationdal.ErrDonationNotFound).
			Twice()
		f.donations.On("MarkDisputed", ctx, "pi_1").
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("gives up after three attempts and still acknowledges", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.dispute.created", disputeObject)

		expectLedger(f, ctx, "evt_1", "charge.dispute.created")
		f.donations.On("MarkDisputed", ctx, "pi_1").
			Return(donationdal.ErrDonationNotFound).
			Times(3)
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})
}

func TestHandleEvent_Refunds(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the donation refunded with the refunded amount", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{
			"id":              "ch_1",
			"payment_intent":  "pi_1",
			"amount_refunded": 5000,
		})

		expectLedger(f, ctx, "evt_1", "charge.refunded")
		f.donations.On("MarkRefunded", ctx, "pi_1", int64(5000)).
			Return(nil).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})

	t.Run("a refund without a matching donation is acknowledged", func(t *testing.T) {
		s, f := newTestWebhookService(t)

		body, header := signedBody(t, "evt_1", "charge.refunded", map[string]interface{}{
			"id":             "ch_1",
			"payment_intent": "pi_1",
		})

		expectLedger(f, ctx, "evt_1", "charge.refunded")
		f.donations.On("MarkRefunded", ctx, "pi_1", mock.Anything).
			Return(donationdal.ErrDonationNotFound).
			Once()
		f.eventsDAL.On("MarkCompleted", ctx, "evt_1").
			Return(nil).
			Once()

		assert.NoError(t, s.HandleEvent(ctx, body, header))
	})
}
