package api

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/email"
	storeinternal "github.com/studyforge/studyforge-backend/internal/store"
	stripeinternal "github.com/studyforge/studyforge-backend/internal/stripe"
)

// ─── POST /api/webhooks/stripe ────────────────────────────────────────────────

// handleStripeWebhook is the entry point for all Stripe webhook deliveries.
//
// Stripe delivers events at-least-once and may retry on non-2xx responses.
// The handler must be idempotent: every operation it performs uses
// upsert/insert-or-ignore patterns so replays are safe.
//
// The only events we act on are:
//   - payment_intent.succeeded      → fulfil the course purchase or activate
//     the subscription, then send the receipt
//   - payment_intent.payment_failed → logged for analytics only
func (s *Server) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	// ── 1. Read and size-limit the body ───────────────────────────────────────
	// Stripe recommends reading the raw body before any other processing so
	// the signature check runs against the exact bytes Stripe signed.
	r.Body = http.MaxBytesReader(w, r.Body, 65536) // 64 KB — generous for any Stripe event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	// ── 2. Verify the Stripe-Signature header ─────────────────────────────────
	sig := r.Header.Get("Stripe-Signature")
	event, err := s.stripe.VerifyWebhook(payload, sig, s.cfg.StripeWebhookSecret)
	if err != nil {
		s.logger.Warn("webhook: invalid signature", "error", err, logField(r))
		respondErr(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	// ── 3. Idempotency: record the event, skip if already processed ───────────
	// UpsertStripeEvent uses ON CONFLICT DO NOTHING. When a duplicate event_id
	// is received Postgres returns zero rows, which sqlc surfaces as
	// sql.ErrNoRows — not a nil struct. We treat that as an idempotent success
	// and ack immediately so Stripe stops retrying.
	_, err = s.q.UpsertStripeEvent(r.Context(), stripeinternal.ToUpsertParams(event, payload))
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("webhook: duplicate event, skipping", "event_id", event.ID, logField(r))
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("upsert stripe event: %w", err))
		return
	}

	// ── 4. Dispatch by event type ─────────────────────────────────────────────
	var handlerErr error

	switch event.Type {
	case "payment_intent.succeeded":
		handlerErr = s.onPaymentSucceeded(r, event)

	case "payment_intent.payment_failed":
		s.logger.Info("webhook: payment failed", "event_id", event.ID, logField(r))

	default:
		// Unknown event type — ack immediately so Stripe stops retrying.
		s.logger.Debug("webhook: unhandled event type", "type", event.Type, logField(r))
	}

	// ── 5. Mark event processed (or failed) ───────────────────────────────────
	if handlerErr != nil {
		s.logger.Error("webhook: handler error",
			"event_id", event.ID,
			"type", event.Type,
			"error", handlerErr,
			logField(r),
		)
		// Record the failure in stripe_events so operators can investigate.
		_, _ = s.q.MarkStripeEventFailed(r.Context(), stripeinternal.ToMarkFailedParams(event.ID, handlerErr))
		// Return 500 so Stripe retries delivery.
		respondErr(w, http.StatusInternalServerError, "webhook handler failed")
		return
	}

	_, _ = s.q.MarkStripeEventProcessed(r.Context(), event.ID)
	w.WriteHeader(http.StatusOK)
}

// ─── EVENT HANDLERS ───────────────────────────────────────────────────────────

func (s *Server) onPaymentSucceeded(r *http.Request, event stripeinternal.Event) error {
	intent, err := stripeinternal.ExtractIntentDetails(event)
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: %w", err)
	}

	switch intent.Metadata["purchase_type"] {
	case "course":
		return s.fulfilCourse(r, intent)
	case "subscription":
		return s.fulfilSubscription(r, intent)
	default:
		// A PaymentIntent we did not create (e.g. dashboard test charge).
		s.logger.Debug("webhook: intent without purchase_type, ignoring",
			"pi_id", intent.ID, logField(r))
		return nil
	}
}

// fulfilCourse turns a paid course PaymentIntent into an enrollment (or a
// renewal). The store method is idempotent against event replays.
func (s *Server) fulfilCourse(r *http.Request, intent stripeinternal.IntentDetails) error {
	userID, err := uuid.Parse(intent.Metadata["user_id"])
	if err != nil {
		return fmt.Errorf("fulfilCourse: bad user_id metadata: %w", err)
	}
	courseID, err := uuid.Parse(intent.Metadata["course_id"])
	if err != nil {
		return fmt.Errorf("fulfilCourse: bad course_id metadata: %w", err)
	}
	days, err := strconv.Atoi(intent.Metadata["days_of_access"])
	if err != nil || days <= 0 {
		return fmt.Errorf("fulfilCourse: bad days_of_access metadata %q", intent.Metadata["days_of_access"])
	}
	isRenewal := intent.Metadata["is_renewal"] == "true"

	userEmail := intent.ReceiptEmail
	if userEmail == "" {
		// Fall back to the address recorded on a previous enrollment.
		if existing, err := s.q.GetEnrollment(r.Context(), db.GetEnrollmentParams{
			UserID:   userID,
			CourseID: courseID,
		}); err == nil {
			userEmail = existing.UserEmail
		}
	}

	enrollment, err := s.store.FulfillPurchase(r.Context(), storeinternal.FulfillPurchaseParams{
		UserID:       userID,
		CourseID:     courseID,
		UserEmail:    userEmail,
		DaysOfAccess: int32(days),
		IsRenewal:    isRenewal,
	})
	if errors.Is(err, storeinternal.ErrNoEnrollment) {
		// Paid renewal for a vanished enrollment — fulfil as a fresh purchase
		// rather than losing the user's money.
		s.logger.Warn("webhook: renewal without enrollment, enrolling fresh",
			"user_id", userID, "course_id", courseID, logField(r))
		enrollment, err = s.store.FulfillPurchase(r.Context(), storeinternal.FulfillPurchaseParams{
			UserID:       userID,
			CourseID:     courseID,
			UserEmail:    userEmail,
			DaysOfAccess: int32(days),
		})
	}
	if err != nil {
		return fmt.Errorf("fulfilCourse: %w", err)
	}

	// Receipt email — failure must not fail the webhook.
	if enrollment.UserEmail != "" {
		course, err := s.q.GetCourseByID(r.Context(), courseID)
		productName := ""
		if err == nil {
			productName = course.Title
		}
		receiptErr := s.mailer.SendReceipt(r.Context(), email.ReceiptParams{
			To:          enrollment.UserEmail,
			ProductName: productName,
			AmountCents: intent.AmountCents,
			Currency:    "usd",
		})
		s.logAndIgnoreEmailErr(r, receiptErr, "send course receipt")
	}

	return nil
}

// fulfilSubscription activates the user's subscription for one billing period.
func (s *Server) fulfilSubscription(r *http.Request, intent stripeinternal.IntentDetails) error {
	userID, err := uuid.Parse(intent.Metadata["user_id"])
	if err != nil {
		return fmt.Errorf("fulfilSubscription: bad user_id metadata: %w", err)
	}
	tier := db.SubscriptionTier(intent.Metadata["tier"])
	interval := db.BillingInterval(intent.Metadata["interval"])
	if !tier.Valid() || !interval.Valid() {
		return fmt.Errorf("fulfilSubscription: bad tier/interval metadata %q/%q",
			intent.Metadata["tier"], intent.Metadata["interval"])
	}

	periodEnd := time.Now().AddDate(0, 1, 0)
	if interval == db.BillingIntervalYear {
		periodEnd = time.Now().AddDate(1, 0, 0)
	}

	if _, err := s.q.ActivateSubscription(r.Context(), db.ActivateSubscriptionParams{
		UserID:           userID,
		Tier:             db.NullSubscriptionTier{SubscriptionTier: tier, Valid: true},
		Interval:         db.NullBillingInterval{BillingInterval: interval, Valid: true},
		CurrentPeriodEnd: sql.NullTime{Time: periodEnd, Valid: true},
	}); err != nil {
		return fmt.Errorf("fulfilSubscription: activate: %w", err)
	}

	if to := intent.ReceiptEmail; to != "" {
		receiptErr := s.mailer.SendReceipt(r.Context(), email.ReceiptParams{
			To:          to,
			ProductName: subscriptionProductName(string(tier), string(interval)),
			AmountCents: intent.AmountCents,
			Currency:    "usd",
		})
		s.logAndIgnoreEmailErr(r, receiptErr, "send subscription receipt")
	}

	return nil
}
