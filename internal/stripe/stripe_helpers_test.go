package stripe_test

import (
	"encoding/json"
	"testing"

	stripeinternal "github.com/studyforge/studyforge-backend/internal/stripe"
)

// ─── ExtractIntentDetails ─────────────────────────────────────────────────────

func TestExtractIntentDetails_Success(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"id":            "pi_abc123",
		"object":        "payment_intent",
		"status":        "succeeded",
		"amount":        4999,
		"receipt_email": "student@example.com",
		"metadata": map[string]string{
			"user_id":       "u-1",
			"purchase_type": "course",
		},
	})

	event := stripeinternal.Event{
		ID:      "evt_test",
		Type:    "payment_intent.succeeded",
		DataRaw: json.RawMessage(raw),
	}

	details, err := stripeinternal.ExtractIntentDetails(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.ID != "pi_abc123" {
		t.Errorf("id: got %q", details.ID)
	}
	if details.AmountCents != 4999 {
		t.Errorf("amount: got %d", details.AmountCents)
	}
	if details.ReceiptEmail != "student@example.com" {
		t.Errorf("receipt email: got %q", details.ReceiptEmail)
	}
	if details.Metadata["purchase_type"] != "course" {
		t.Errorf("metadata: got %+v", details.Metadata)
	}
}

func TestExtractIntentDetails_EmptyIDReturnsError(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"id": "", "object": "payment_intent"})
	event := stripeinternal.Event{DataRaw: json.RawMessage(raw)}

	_, err := stripeinternal.ExtractIntentDetails(event)
	if err == nil {
		t.Error("expected error for empty id, got nil")
	}
}

func TestExtractIntentDetails_MalformedJSONReturnsError(t *testing.T) {
	event := stripeinternal.Event{DataRaw: json.RawMessage(`{bad json`)}

	_, err := stripeinternal.ExtractIntentDetails(event)
	if err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestExtractIntentDetails_MissingMetadataIsNotAnError(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"id": "pi_no_meta", "amount": 100})
	event := stripeinternal.Event{DataRaw: json.RawMessage(raw)}

	details, err := stripeinternal.ExtractIntentDetails(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Metadata != nil && len(details.Metadata) != 0 {
		t.Errorf("expected empty metadata, got %+v", details.Metadata)
	}
}

// ─── ToUpsertParams ───────────────────────────────────────────────────────────

func TestToUpsertParams_SetsAllFields(t *testing.T) {
	payload := []byte(`{"id":"evt_123","type":"payment_intent.succeeded"}`)
	event := stripeinternal.Event{
		ID:   "evt_123",
		Type: "payment_intent.succeeded",
	}

	params := stripeinternal.ToUpsertParams(event, payload)

	if params.StripeEventID != "evt_123" {
		t.Errorf("StripeEventID: got %q", params.StripeEventID)
	}
	if params.Type != "payment_intent.succeeded" {
		t.Errorf("Type: got %q", params.Type)
	}
	if string(params.Payload) != string(payload) {
		t.Errorf("Payload mismatch")
	}
}

// ─── ToMarkFailedParams ───────────────────────────────────────────────────────

func TestToMarkFailedParams_SetsErrorMessage(t *testing.T) {
	testErr := &testError{"something went wrong"}
	params := stripeinternal.ToMarkFailedParams("evt_456", testErr)

	if params.StripeEventID != "evt_456" {
		t.Errorf("StripeEventID: got %q", params.StripeEventID)
	}
	if !params.Error.Valid {
		t.Error("expected Error.Valid=true")
	}
	if params.Error.String != "something went wrong" {
		t.Errorf("error message: got %q", params.Error.String)
	}
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
