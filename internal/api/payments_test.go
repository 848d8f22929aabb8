package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/api"
	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/store"
)

// checkoutEnvelope matches both the success and error response shapes.
type checkoutEnvelope struct {
	Status       string `json:"status"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	ProductName  string `json:"productName"`
	Error        string `json:"error"`
	ErrorCode    string `json:"errorCode"`
}

func postIntent(t *testing.T, deps *testDeps, body any, headers map[string]string) (*checkoutEnvelope, int) {
	t.Helper()
	rr := doRequest(t, deps.handler, http.MethodPost, "/api/payments/intent", body, headers)
	var env checkoutEnvelope
	decodeJSON(t, rr, &env)
	return &env, rr.Code
}

// ─── AUTH ─────────────────────────────────────────────────────────────────────

func TestPaymentIntent_MissingAuthHeader(t *testing.T) {
	deps := newTestServer(t)

	env, code := postIntent(t, deps, map[string]any{"mode": "payment"}, nil)

	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if env.Status != "error" || env.ErrorCode != "MISSING_AUTH" {
		t.Errorf("envelope: %+v", env)
	}
	// Auth is checked before anything else touches the database or Stripe.
	if deps.q.getCourseCalls != 0 {
		t.Error("no database call may precede the auth check")
	}
	if len(deps.stripe.createdParams) != 0 {
		t.Error("no Stripe call may precede the auth check")
	}
}

func TestPaymentIntent_InvalidToken(t *testing.T) {
	deps := newTestServer(t)

	env, code := postIntent(t, deps, map[string]any{"mode": "payment"},
		authHeader("tok_not_registered"))

	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if env.ErrorCode != "UNAUTHORIZED" {
		t.Errorf("errorCode: got %q", env.ErrorCode)
	}
}

// ─── SCHEMA VALIDATION ────────────────────────────────────────────────────────

func TestPaymentIntent_UnknownBodyFieldRejected(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "amountCents": 1}, authHeader(token))

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.ErrorCode != "INVALID_PARAMETERS" {
		t.Errorf("errorCode: got %q", env.ErrorCode)
	}
}

func TestPaymentIntent_SubscriptionModeRequiresTierAndInterval(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")

	env, code := postIntent(t, deps, map[string]any{"mode": "subscription"}, authHeader(token))

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.ErrorCode != "INVALID_PARAMETERS" {
		t.Errorf("errorCode: got %q", env.ErrorCode)
	}
}

func TestPaymentIntent_UnknownModeRejected(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")

	env, code := postIntent(t, deps, map[string]any{"mode": "donation"}, authHeader(token))

	if code != http.StatusBadRequest || env.ErrorCode != "INVALID_PARAMETERS" {
		t.Fatalf("got %d / %q", code, env.ErrorCode)
	}
}

func TestPaymentIntent_MalformedCourseIDRejected(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "courseId": "not-a-uuid"}, authHeader(token))

	if code != http.StatusBadRequest || env.ErrorCode != "INVALID_PARAMETERS" {
		t.Fatalf("got %d / %q", code, env.ErrorCode)
	}
}

// ─── COURSE PURCHASES ─────────────────────────────────────────────────────────

func TestPaymentIntent_CourseNotFound(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "courseId": uuid.NewString()}, authHeader(token))

	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.ErrorCode != "COURSE_NOT_FOUND" || env.Error != "Course not found" {
		t.Errorf("envelope: %+v", env)
	}
}

func TestPaymentIntent_AlreadyEnrolledRejected(t *testing.T) {
	deps := newTestServer(t)
	user, token := deps.addUser("a@example.com")
	courseID := deps.addCourse("Algebra I", "19.99", 90)
	deps.q.activeEnrollments[enrollKey(user.ID, courseID)] = db.CourseEnrollment{
		UserID: user.ID, CourseID: courseID, Status: db.EnrollmentStatusActive,
	}

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "courseId": courseID.String()}, authHeader(token))

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Error != "User already owns this course" || env.ErrorCode != "INVALID_PARAMETERS" {
		t.Errorf("envelope: %+v", env)
	}
	if len(deps.stripe.createdParams) != 0 {
		t.Error("no PaymentIntent may be created for an owned course")
	}
}

func TestPaymentIntent_FreeCourseEnrollsWithoutStripe(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")
	courseID := deps.addCourse("Intro to Study Skills", "0", 30)

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "courseId": courseID.String()}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if env.Status != "success" {
		t.Errorf("status: got %q", env.Status)
	}
	// The frontend branches on this exact sentinel value.
	if env.ClientSecret != "free_course" {
		t.Errorf("clientSecret: got %q, want free_course", env.ClientSecret)
	}
	if env.Amount != 0 {
		t.Errorf("amount: got %d", env.Amount)
	}
	if env.ProductName != "Intro to Study Skills" {
		t.Errorf("productName: got %q", env.ProductName)
	}
	if len(deps.store.enrollFreeCalls) != 1 || deps.store.enrollFreeCalls[0] != courseID {
		t.Errorf("EnrollFree calls: %v", deps.store.enrollFreeCalls)
	}
	if len(deps.stripe.createdParams) != 0 {
		t.Error("free courses must never reach Stripe")
	}
}

func TestPaymentIntent_FreeCourseRenewalPrefixesProductName(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")
	courseID := deps.addCourse("Intro to Study Skills", "0", 30)

	env, code := postIntent(t, deps, map[string]any{
		"mode": "payment", "courseId": courseID.String(), "isRenewal": true,
	}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if env.ProductName != "Renew: Intro to Study Skills" {
		t.Errorf("productName: got %q", env.ProductName)
	}
	if len(deps.store.renewFreeCalls) != 1 {
		t.Errorf("RenewFreeEnrollment calls: %v", deps.store.renewFreeCalls)
	}
}

func TestPaymentIntent_FreeRenewalWithoutEnrollment(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")
	courseID := deps.addCourse("Intro to Study Skills", "0", 30)
	deps.store.renewFreeErr = store.ErrNoEnrollment

	env, code := postIntent(t, deps, map[string]any{
		"mode": "payment", "courseId": courseID.String(), "isRenewal": true,
	}, authHeader(token))

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Error != "No enrollment to renew" || env.ErrorCode != "INVALID_PARAMETERS" {
		t.Errorf("envelope: %+v", env)
	}
}

func TestPaymentIntent_PaidCourseAmountInCents(t *testing.T) {
	cases := []struct {
		price string
		cents int64
	}{
		{"19.99", 1999},
		{"10", 1000},
		{"49.95", 4995},
		{"0.50", 50},
	}

	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			deps := newTestServer(t)
			_, token := deps.addUser("a@example.com")
			courseID := deps.addCourse("Calculus", tc.price, 90)

			env, code := postIntent(t, deps,
				map[string]any{"mode": "payment", "courseId": courseID.String()}, authHeader(token))

			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			if env.Amount != tc.cents {
				t.Errorf("amount: got %d, want %d", env.Amount, tc.cents)
			}
			if got := deps.stripe.createdParams[0].AmountCents; got != tc.cents {
				t.Errorf("stripe amount: got %d, want %d", got, tc.cents)
			}
		})
	}
}

func TestPaymentIntent_PaidCourseMetadata(t *testing.T) {
	deps := newTestServer(t)
	user, token := deps.addUser("buyer@example.com")
	courseID := deps.addCourse("Calculus", "19.99", 90)

	_, code := postIntent(t, deps, map[string]any{
		"mode":     "payment",
		"courseId": courseID.String(),
		"metadata": map[string]any{
			"campaign":  "spring",
			"attempt":   2,
			"course_id": "spoofed", // fixed keys must win over caller metadata
		},
	}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	meta := deps.stripe.createdParams[0].Metadata
	if meta["user_id"] != user.ID.String() {
		t.Errorf("user_id: got %q", meta["user_id"])
	}
	if meta["source"] != "client" {
		t.Errorf("source: got %q", meta["source"])
	}
	if meta["campaign"] != "spring" {
		t.Errorf("campaign: got %q", meta["campaign"])
	}
	if meta["attempt"] != "2" {
		t.Errorf("non-string caller values must be stringified: got %q", meta["attempt"])
	}
	if meta["course_id"] != courseID.String() {
		t.Errorf("course_id must not be spoofable: got %q", meta["course_id"])
	}
	if meta["purchase_type"] != "course" {
		t.Errorf("purchase_type: got %q", meta["purchase_type"])
	}
	if meta["is_renewal"] != "false" {
		t.Errorf("is_renewal: got %q", meta["is_renewal"])
	}
	if meta["days_of_access"] != "90" {
		t.Errorf("days_of_access: got %q", meta["days_of_access"])
	}
}

func TestPaymentIntent_PaidCourseDoesNotEnroll(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")
	courseID := deps.addCourse("Calculus", "19.99", 90)

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "courseId": courseID.String()}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if env.ClientSecret != "cs_test" {
		t.Errorf("clientSecret: got %q", env.ClientSecret)
	}
	// Enrollment is the webhook's job; checkout only creates the intent.
	if len(deps.store.enrollFreeCalls)+len(deps.store.fulfilled) != 0 {
		t.Error("paid checkout must not enroll before payment confirmation")
	}
}

func TestPaymentIntent_BookkeepingFailureDoesNotFailCheckout(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")
	courseID := deps.addCourse("Calculus", "19.99", 90)
	deps.q.createCheckoutErr = errTest

	env, code := postIntent(t, deps,
		map[string]any{"mode": "payment", "courseId": courseID.String()}, authHeader(token))

	// The PaymentIntent already exists on Stripe's side; the client secret
	// must still reach the browser.
	if code != http.StatusOK {
		t.Fatalf("expected 200 despite bookkeeping failure, got %d", code)
	}
	if env.Status != "success" {
		t.Errorf("status: got %q", env.Status)
	}
}

// ─── SUBSCRIPTIONS ────────────────────────────────────────────────────────────

func TestPaymentIntent_SubscriptionAmountComesFromStripePrice(t *testing.T) {
	deps := newTestServer(t)
	_, token := deps.addUser("a@example.com")
	deps.stripe.price.UnitAmountCents = 2499

	env, code := postIntent(t, deps, map[string]any{
		"mode": "subscription", "subscriptionTier": "premium", "interval": "month",
	}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %+v", code, env)
	}
	if env.Amount != 2499 {
		t.Errorf("amount: got %d, want the Stripe price unit_amount", env.Amount)
	}
	if env.ProductName != "Premium (Monthly)" {
		t.Errorf("productName: got %q", env.ProductName)
	}

	params := deps.stripe.createdParams[0]
	if params.SetupFutureUsage != "off_session" {
		t.Errorf("setup_future_usage: got %q", params.SetupFutureUsage)
	}
	if params.CustomerID != "cus_test" {
		t.Errorf("customer: got %q", params.CustomerID)
	}
}

func TestPaymentIntent_SubscriptionProductNames(t *testing.T) {
	cases := []struct {
		tier, interval, want string
	}{
		{"premium", "month", "Premium (Monthly)"},
		{"premium", "year", "Premium (Annual)"},
		{"unlimited", "month", "Unlimited (Monthly)"},
		{"unlimited", "year", "Unlimited (Annual)"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			deps := newTestServer(t)
			_, token := deps.addUser("a@example.com")

			env, code := postIntent(t, deps, map[string]any{
				"mode": "subscription", "subscriptionTier": tc.tier, "interval": tc.interval,
			}, authHeader(token))

			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			if env.ProductName != tc.want {
				t.Errorf("productName: got %q, want %q", env.ProductName, tc.want)
			}
		})
	}
}

func TestPaymentIntent_SubscriptionResolvesPriceFromTable(t *testing.T) {
	cases := []struct {
		tier, interval, priceID string
	}{
		{"premium", "month", "price_prem_m"},
		{"premium", "year", "price_prem_y"},
		{"unlimited", "month", "price_unl_m"},
		{"unlimited", "year", "price_unl_y"},
	}

	for _, tc := range cases {
		t.Run(tc.tier+"/"+tc.interval, func(t *testing.T) {
			deps := newTestServer(t)
			_, token := deps.addUser("a@example.com")

			_, code := postIntent(t, deps, map[string]any{
				"mode": "subscription", "subscriptionTier": tc.tier, "interval": tc.interval,
			}, authHeader(token))

			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			// The configured table, not the request, decides which Stripe
			// price is fetched, and the resolved id lands in the intent
			// metadata for the webhook.
			if got := deps.stripe.priceRequests; len(got) != 1 || got[0] != tc.priceID {
				t.Errorf("price lookup: got %v, want [%s]", got, tc.priceID)
			}
			params := deps.stripe.createdParams[0]
			if params.Metadata["price_id"] != tc.priceID {
				t.Errorf("metadata price_id: got %q, want %q", params.Metadata["price_id"], tc.priceID)
			}
		})
	}
}

func TestPaymentIntent_SubscriptionCreatesAndPersistsCustomer(t *testing.T) {
	deps := newTestServer(t)
	user, token := deps.addUser("new-subscriber@example.com")

	_, code := postIntent(t, deps, map[string]any{
		"mode": "subscription", "subscriptionTier": "premium", "interval": "month",
	}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(deps.stripe.createdCustomers) != 1 || deps.stripe.createdCustomers[0] != user.Email {
		t.Errorf("created customers: %v", deps.stripe.createdCustomers)
	}
	if len(deps.q.upsertedCustomers) != 1 {
		t.Fatalf("customer id not persisted: %v", deps.q.upsertedCustomers)
	}
	if got := deps.q.upsertedCustomers[0].StripeCustomerID.String; got != "cus_test" {
		t.Errorf("persisted customer id: got %q", got)
	}
}

func TestPaymentIntent_SubscriptionReusesExistingCustomer(t *testing.T) {
	deps := newTestServer(t)
	user, token := deps.addUser("returning@example.com")
	deps.q.subscriptions[user.ID] = db.UserSubscription{
		UserID:           user.ID,
		StripeCustomerID: nullString("cus_existing"),
	}

	_, code := postIntent(t, deps, map[string]any{
		"mode": "subscription", "subscriptionTier": "unlimited", "interval": "year",
	}, authHeader(token))

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(deps.stripe.createdCustomers) != 0 {
		t.Error("must not create a second Stripe customer")
	}
	if got := deps.stripe.createdParams[0].CustomerID; got != "cus_existing" {
		t.Errorf("customer: got %q, want cus_existing", got)
	}
}

func TestPaymentIntent_SubscriptionUnknownPriceRejected(t *testing.T) {
	deps := newTestServer(t, func(c *api.Config) {
		c.Prices = nil // no price table configured
	})
	_, token := deps.addUser("a@example.com")

	env, code := postIntent(t, deps, map[string]any{
		"mode": "subscription", "subscriptionTier": "premium", "interval": "month",
	}, authHeader(token))

	if code != http.StatusBadRequest || env.ErrorCode != "INVALID_PARAMETERS" {
		t.Fatalf("got %d / %q", code, env.ErrorCode)
	}
}
