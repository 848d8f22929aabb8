package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/studyforge/studyforge-backend/internal/auth"
	"github.com/studyforge/studyforge-backend/internal/db"
	storeinternal "github.com/studyforge/studyforge-backend/internal/store"
	stripeinternal "github.com/studyforge/studyforge-backend/internal/stripe"
)

// ─── POST /api/payments/intent ────────────────────────────────────────────────

// Checkout error codes. Exactly five kinds — every failure in this handler
// maps onto one of them.
const (
	codeMissingAuth       = "MISSING_AUTH"       // 401
	codeUnauthorized      = "UNAUTHORIZED"       // 401
	codeInvalidParameters = "INVALID_PARAMETERS" // 400
	codeCourseNotFound    = "COURSE_NOT_FOUND"   // 404
	codeCheckoutFailed    = "CHECKOUT_FAILED"    // 500
)

// freeCourseSecret is the sentinel client secret returned for zero-price
// courses. The frontend branches on this exact value, so it must never change.
const freeCourseSecret = "free_course"

type paymentIntentRequest struct {
	Mode             string         `json:"mode" validate:"required,oneof=payment subscription"`
	CourseID         string         `json:"courseId" validate:"omitempty,uuid"`
	SubscriptionTier string         `json:"subscriptionTier" validate:"required_if=Mode subscription,omitempty,oneof=premium unlimited"`
	Interval         string         `json:"interval" validate:"required_if=Mode subscription,omitempty,oneof=month year"`
	IsRenewal        bool           `json:"isRenewal"`
	Metadata         map[string]any `json:"metadata"`
}

type paymentIntentSuccess struct {
	Status       string `json:"status"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	ProductName  string `json:"productName"`
}

type paymentIntentError struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode"`
}

// checkoutErr writes the payment error envelope for the given code.
func checkoutErr(w http.ResponseWriter, code string, message string) {
	status := http.StatusInternalServerError
	switch code {
	case codeMissingAuth, codeUnauthorized:
		status = http.StatusUnauthorized
	case codeInvalidParameters:
		status = http.StatusBadRequest
	case codeCourseNotFound:
		status = http.StatusNotFound
	}
	respond(w, status, paymentIntentError{
		Status:    "error",
		Error:     message,
		ErrorCode: code,
	})
}

func checkoutOK(w http.ResponseWriter, clientSecret string, amount int64, productName string) {
	respond(w, http.StatusOK, paymentIntentSuccess{
		Status:       "success",
		ClientSecret: clientSecret,
		Amount:       amount,
		ProductName:  productName,
	})
}

// handleCreatePaymentIntent is the checkout entry point for course purchases,
// course renewals, and subscription starts.
//
// Order matters: auth first (no database or Stripe call may precede it), then
// schema validation, then the mode branch. Free courses short-circuit with the
// "free_course" sentinel and never reach Stripe.
func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	// ── 1. Auth ───────────────────────────────────────────────────────────────
	token := bearerToken(r)
	if token == "" {
		checkoutErr(w, codeMissingAuth, "Missing authorization header")
		return
	}
	user, err := s.auth.ResolveToken(r.Context(), token)
	if err != nil {
		checkoutErr(w, codeUnauthorized, "Invalid or expired token")
		return
	}

	// ── 2. Schema validation ──────────────────────────────────────────────────
	var req paymentIntentRequest
	if err := decodeBody(w, r, &req); err != nil {
		checkoutErr(w, codeInvalidParameters, "Invalid request parameters")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		// Field-level detail is deliberately not surfaced.
		checkoutErr(w, codeInvalidParameters, "Invalid request parameters")
		return
	}

	switch req.Mode {
	case "payment":
		s.createCoursePayment(w, r, user, req)
	case "subscription":
		s.createSubscriptionPayment(w, r, user, req)
	}
}

// ─── COURSE PURCHASE PATH ─────────────────────────────────────────────────────

func (s *Server) createCoursePayment(w http.ResponseWriter, r *http.Request, user auth.User, req paymentIntentRequest) {
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		checkoutErr(w, codeInvalidParameters, "Invalid request parameters")
		return
	}

	course, err := s.q.GetCourseByID(r.Context(), courseID)
	if errors.Is(err, sql.ErrNoRows) {
		checkoutErr(w, codeCourseNotFound, "Course not found")
		return
	}
	if err != nil {
		checkoutErr(w, codeCheckoutFailed, err.Error())
		return
	}

	// Active enrollment guard: a non-renewal purchase of a course the user
	// already holds is rejected regardless of price.
	if !req.IsRenewal {
		_, err := s.q.GetActiveEnrollment(r.Context(), db.GetActiveEnrollmentParams{
			UserID:   user.ID,
			CourseID: courseID,
		})
		if err == nil {
			checkoutErr(w, codeInvalidParameters, "User already owns this course")
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			checkoutErr(w, codeCheckoutFailed, err.Error())
			return
		}
	}

	price, err := strconv.ParseFloat(course.Price, 64)
	if err != nil {
		checkoutErr(w, codeCheckoutFailed, fmt.Sprintf("invalid course price %q", course.Price))
		return
	}

	// ── Free course: enroll or renew directly, no Stripe round-trip ──────────
	if price == 0 {
		productName := course.Title
		if req.IsRenewal {
			productName = "Renew: " + course.Title

			_, err := s.store.RenewFreeEnrollment(r.Context(), user.ID, courseID, course.DaysOfAccess)
			if errors.Is(err, storeinternal.ErrNoEnrollment) {
				checkoutErr(w, codeInvalidParameters, "No enrollment to renew")
				return
			}
			if err != nil {
				checkoutErr(w, codeCheckoutFailed, err.Error())
				return
			}
		} else {
			_, err := s.store.EnrollFree(r.Context(), user.ID, courseID, user.Email, course.DaysOfAccess)
			if errors.Is(err, storeinternal.ErrAlreadyEnrolled) {
				checkoutErr(w, codeInvalidParameters, "User already owns this course")
				return
			}
			if err != nil {
				checkoutErr(w, codeCheckoutFailed, err.Error())
				return
			}
		}

		checkoutOK(w, freeCourseSecret, 0, productName)
		return
	}

	// ── Paid course: create the PaymentIntent; enrollment waits for the
	// webhook ────────────────────────────────────────────────────────────────
	amountCents := int64(math.Round(price * 100))

	// Standardized base + caller metadata first, fixed course keys last so
	// the fixed keys win on collision.
	metadata := s.standardMetadata(user, req.Metadata)
	metadata["course_id"] = courseID.String()
	metadata["is_renewal"] = strconv.FormatBool(req.IsRenewal)
	metadata["days_of_access"] = strconv.Itoa(int(course.DaysOfAccess))
	metadata["purchase_type"] = "course"

	pi, err := s.stripe.CreatePaymentIntent(r.Context(), stripeinternal.CreatePaymentIntentParams{
		AmountCents:  amountCents,
		Currency:     "usd",
		ReceiptEmail: user.Email,
		Metadata:     metadata,
	})
	if err != nil {
		checkoutErr(w, codeCheckoutFailed, err.Error())
		return
	}

	checkoutType := db.CheckoutTypeCoursePurchase
	if req.IsRenewal {
		checkoutType = db.CheckoutTypeCourseRenewal
	}
	s.recordCheckoutSession(r, db.CreateCheckoutSessionParams{
		UserID:          user.ID,
		CheckoutType:    checkoutType,
		CourseID:        uuid.NullUUID{UUID: courseID, Valid: true},
		SuccessUrl:      s.returnURL(r, "/checkout/success"),
		CancelUrl:       s.returnURL(r, "/checkout/cancel"),
		Metadata:        marshalMetadata(req.Metadata),
		StripeSessionID: pi.ID,
	})

	productName := course.Title
	if req.IsRenewal {
		productName = "Renew: " + course.Title
	}
	checkoutOK(w, pi.ClientSecret, amountCents, productName)
}

// ─── SUBSCRIPTION PATH ────────────────────────────────────────────────────────

func (s *Server) createSubscriptionPayment(w http.ResponseWriter, r *http.Request, user auth.User, req paymentIntentRequest) {
	tier, interval := req.SubscriptionTier, req.Interval

	// Defense in depth beyond the schema validator.
	if (tier != "premium" && tier != "unlimited") || (interval != "month" && interval != "year") {
		checkoutErr(w, codeInvalidParameters, "Invalid request parameters")
		return
	}

	customerID, err := s.resolveCustomer(r, user)
	if err != nil {
		checkoutErr(w, codeCheckoutFailed, err.Error())
		return
	}

	priceID, ok := s.cfg.Prices.Lookup(tier, interval)
	if !ok {
		checkoutErr(w, codeInvalidParameters, "Invalid request parameters")
		return
	}

	// The Stripe price is the source of truth for the amount — never
	// recomputed locally.
	price, err := s.stripe.GetPrice(r.Context(), priceID)
	if err != nil {
		checkoutErr(w, codeCheckoutFailed, err.Error())
		return
	}

	metadata := s.standardMetadata(user, req.Metadata)
	metadata["tier"] = tier
	metadata["interval"] = interval
	metadata["purchase_type"] = "subscription"
	metadata["price_id"] = priceID

	pi, err := s.stripe.CreatePaymentIntent(r.Context(), stripeinternal.CreatePaymentIntentParams{
		AmountCents:      price.UnitAmountCents,
		Currency:         "usd",
		CustomerID:       customerID,
		ReceiptEmail:     user.Email,
		SetupFutureUsage: "off_session",
		Metadata:         metadata,
	})
	if err != nil {
		checkoutErr(w, codeCheckoutFailed, err.Error())
		return
	}

	s.recordCheckoutSession(r, db.CreateCheckoutSessionParams{
		UserID:           user.ID,
		CheckoutType:     db.CheckoutTypeSubscription,
		SubscriptionTier: db.NullSubscriptionTier{SubscriptionTier: db.SubscriptionTier(tier), Valid: true},
		Interval:         db.NullBillingInterval{BillingInterval: db.BillingInterval(interval), Valid: true},
		SuccessUrl:       s.returnURL(r, "/checkout/success"),
		CancelUrl:        s.returnURL(r, "/checkout/cancel"),
		Metadata:         marshalMetadata(req.Metadata),
		StripeSessionID:  pi.ID,
	})

	checkoutOK(w, pi.ClientSecret, price.UnitAmountCents, subscriptionProductName(tier, interval))
}

// resolveCustomer returns the user's Stripe customer id, creating (and
// persisting) one when the user has never been billed before.
func (s *Server) resolveCustomer(r *http.Request, user auth.User) (string, error) {
	sub, err := s.q.GetUserSubscription(r.Context(), user.ID)
	if err == nil && sub.StripeCustomerID.Valid && sub.StripeCustomerID.String != "" {
		return sub.StripeCustomerID.String, nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get subscription: %w", err)
	}

	customerID, err := s.stripe.CreateCustomer(r.Context(), user.Email, user.ID.String())
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	// Persist so the next checkout reuses the same Stripe customer. Failure
	// is non-fatal for this request — the PaymentIntent still works.
	if _, err := s.q.UpsertStripeCustomer(r.Context(), db.UpsertStripeCustomerParams{
		UserID:           user.ID,
		StripeCustomerID: sql.NullString{String: customerID, Valid: true},
	}); err != nil {
		s.logger.Error("checkout: persist stripe customer failed",
			"user_id", user.ID,
			"error", err,
			logField(r),
		)
	}

	return customerID, nil
}

// ─── SHARED HELPERS ───────────────────────────────────────────────────────────

// standardMetadata builds the PaymentIntent metadata base: user id, source,
// then caller-supplied keys. Fixed purchase keys are assigned by the caller
// afterwards so they take precedence over anything client-supplied.
func (s *Server) standardMetadata(user auth.User, callerMeta map[string]any) map[string]string {
	meta := make(map[string]string, len(callerMeta)+6)
	meta["user_id"] = user.ID.String()
	meta["source"] = "client"
	for k, v := range callerMeta {
		if str, ok := v.(string); ok {
			meta[k] = str
		} else {
			meta[k] = fmt.Sprint(v)
		}
	}
	return meta
}

// recordCheckoutSession inserts the bookkeeping row for a checkout attempt.
// An insert failure is logged but never fails the checkout — the
// PaymentIntent already exists and the client secret must reach the browser.
func (s *Server) recordCheckoutSession(r *http.Request, params db.CreateCheckoutSessionParams) {
	if _, err := s.q.CreateCheckoutSession(r.Context(), params); err != nil {
		s.logger.Error("checkout: bookkeeping insert failed",
			"stripe_session_id", params.StripeSessionID,
			"checkout_type", params.CheckoutType,
			"error", err,
			logField(r),
		)
	}
}

// returnURL builds a success/cancel URL from the request Origin, falling back
// to the configured frontend origin.
func (s *Server) returnURL(r *http.Request, path string) string {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = s.cfg.FrontendOrigin
	}
	return origin + path
}

// marshalMetadata serialises caller metadata for the JSONB bookkeeping column.
func marshalMetadata(meta map[string]any) pqtype.NullRawMessage {
	if len(meta) == 0 {
		return pqtype.NullRawMessage{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}

// subscriptionProductName renders "Premium (Monthly)" / "Unlimited (Annual)".
func subscriptionProductName(tier, interval string) string {
	capTier := strings.ToUpper(tier[:1]) + tier[1:]
	if interval == "year" {
		return capTier + " (Annual)"
	}
	return capTier + " (Monthly)"
}
