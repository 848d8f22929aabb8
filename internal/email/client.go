// Package email defines the interface for transactional email delivery and
// provides a Resend-backed implementation.
package email

import (
	"context"
	"time"
)

// ReceiptParams holds the data for the post-payment receipt email.
type ReceiptParams struct {
	To          string
	ProductName string // e.g. a course title or "Premium (Monthly)"
	AmountCents int64  // e.g. 1999 for $19.99
	Currency    string // e.g. "usd"
}

// ExpiryNoticeParams holds the data for the enrollment expiry reminder.
type ExpiryNoticeParams struct {
	To          string
	CourseTitle string
	ExpiresAt   time.Time
}

// Sender is the interface the worker and webhook handler use to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// SendReceipt sends the payment receipt. Called by the webhook handler
	// after a payment_intent.succeeded event is fulfilled.
	SendReceipt(ctx context.Context, p ReceiptParams) error

	// SendExpiryNotice warns the user that their course access is about to
	// lapse. Called by the expiry notifier worker.
	SendExpiryNotice(ctx context.Context, p ExpiryNoticeParams) error
}
