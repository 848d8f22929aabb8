// Package stripe defines the interface for Stripe API calls and webhook
// verification, and provides helpers used by the api and worker packages.
package stripe

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/studyforge/studyforge-backend/internal/db"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// CreatePaymentIntentParams holds the inputs for creating a Stripe PI.
type CreatePaymentIntentParams struct {
	AmountCents int64
	Currency    string
	CustomerID  string
	// ReceiptEmail is set on one-off course purchases so Stripe emails a
	// receipt without a Customer-level email change.
	ReceiptEmail string
	// SetupFutureUsage, when "off_session", asks Stripe to save the payment
	// method for recurring subscription charges.
	SetupFutureUsage string
	Metadata         map[string]string
}

// PaymentIntent is the subset of a Stripe PaymentIntent that callers need.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
}

// Price is the subset of a Stripe Price that subscription checkout needs.
type Price struct {
	ID              string
	UnitAmountCents int64
}

// Event is a parsed Stripe webhook event. DataRaw contains the raw JSON of the
// event's data.object so handlers can unmarshal only what they need.
type Event struct {
	ID      string
	Type    string
	DataRaw json.RawMessage
}

// ─── CLIENT INTERFACE ─────────────────────────────────────────────────────────

// Client is the interface the api and worker packages use for all Stripe calls.
// The concrete implementation wraps the official stripe-go SDK.
// Tests inject a stub.
type Client interface {
	// CreateCustomer creates a Stripe Customer for a user who doesn't have
	// one yet and returns its ID.
	CreateCustomer(ctx context.Context, email string, userID string) (string, error)

	// GetPrice retrieves a Price by ID. Subscription checkout uses its
	// unit_amount as the charge amount.
	GetPrice(ctx context.Context, priceID string) (Price, error)

	// CreatePaymentIntent creates a new PI and returns its client_secret.
	CreatePaymentIntent(ctx context.Context, p CreatePaymentIntentParams) (PaymentIntent, error)

	// VerifyWebhook validates the Stripe-Signature header and returns the
	// parsed event. Returns an error if the signature is invalid or expired.
	VerifyWebhook(payload []byte, sigHeader string, secret string) (Event, error)
}

// ─── HELPERS USED BY api/ ────────────────────────────────────────────────────

// ToUpsertParams converts a parsed Event and its raw payload into the params
// needed by db.Querier.UpsertStripeEvent.
func ToUpsertParams(event Event, rawPayload []byte) db.UpsertStripeEventParams {
	return db.UpsertStripeEventParams{
		StripeEventID: event.ID,
		Type:          event.Type,
		Payload:       json.RawMessage(rawPayload),
	}
}

// ToMarkFailedParams builds the params for db.Querier.MarkStripeEventFailed.
func ToMarkFailedParams(eventID string, err error) db.MarkStripeEventFailedParams {
	return db.MarkStripeEventFailedParams{
		StripeEventID: eventID,
		Error:         sql.NullString{String: err.Error(), Valid: true},
	}
}

// IntentDetails is the slice of a payment_intent.succeeded data.object that
// fulfilment needs: the intent id, its metadata, and the charged amount.
type IntentDetails struct {
	ID           string
	AmountCents  int64
	ReceiptEmail string
	Metadata     map[string]string
}

// ExtractIntentDetails pulls the id, amount, receipt email and metadata from
// the event's data.object. Works for payment_intent.* events.
func ExtractIntentDetails(event Event) (IntentDetails, error) {
	var obj struct {
		ID           string            `json:"id"`
		Amount       int64             `json:"amount"`
		ReceiptEmail string            `json:"receipt_email"`
		Metadata     map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.DataRaw, &obj); err != nil {
		return IntentDetails{}, fmt.Errorf("stripe: unmarshal payment intent: %w", err)
	}
	if obj.ID == "" {
		return IntentDetails{}, fmt.Errorf("stripe: payment intent id is empty in event %s", event.ID)
	}
	return IntentDetails{
		ID:           obj.ID,
		AmountCents:  obj.Amount,
		ReceiptEmail: obj.ReceiptEmail,
		Metadata:     obj.Metadata,
	}, nil
}
