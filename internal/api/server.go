// Package api implements the HTTP layer for the StudyForge backend.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/ai"
	"github.com/studyforge/studyforge-backend/internal/auth"
	"github.com/studyforge/studyforge-backend/internal/config"
	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/email"
	"github.com/studyforge/studyforge-backend/internal/ratelimit"
	storeinternal "github.com/studyforge/studyforge-backend/internal/store"
	stripeinternal "github.com/studyforge/studyforge-backend/internal/stripe"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// FrontendOrigin is the fallback origin for success/cancel URLs and CORS
	// when a request carries no Origin header.
	FrontendOrigin string

	// StripeWebhookSecret is the signing secret from the Stripe dashboard for
	// the active environment.
	StripeWebhookSecret string

	// Prices is the environment-resolved tier×interval price-id table.
	Prices config.PriceTable

	// ChatRateLimit / ChatRateWindow bound chat messages per user.
	ChatRateLimit  int
	ChatRateWindow time.Duration

	// FreeCollectionLimit is how many flashcard collections a user without an
	// active subscription may own. Zero disables the limit.
	FreeCollectionLimit int64
}

// Store is the subset of *store.Store methods the handlers call. Declared
// here so tests can inject an in-memory implementation without a database.
type Store interface {
	EnrollFree(ctx context.Context, userID, courseID uuid.UUID, userEmail string, daysOfAccess int32) (db.CourseEnrollment, error)
	RenewFreeEnrollment(ctx context.Context, userID, courseID uuid.UUID, daysOfAccess int32) (db.CourseEnrollment, error)
	FulfillPurchase(ctx context.Context, p storeinternal.FulfillPurchaseParams) (db.CourseEnrollment, error)
	CreateCollection(ctx context.Context, arg db.CreateCollectionParams, maxCollections int64) (db.Collection, error)
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// store handles multi-step atomic writes.
	store Store

	// auth resolves bearer tokens to users.
	auth auth.Resolver

	// stripe creates customers/PaymentIntents and verifies webhook signatures.
	stripe stripeinternal.Client

	// responder generates AI tutor replies for chat.
	responder ai.Responder

	// limiter rate-limits chat messages per user.
	limiter ratelimit.Limiter

	// mailer sends transactional emails (receipts).
	mailer email.Sender

	validate *validator.Validate
	cfg      Config
	logger   *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	st Store,
	authResolver auth.Resolver,
	stripeClient stripeinternal.Client,
	responder ai.Responder,
	limiter ratelimit.Limiter,
	mailer email.Sender,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:         q,
		store:     st,
		auth:      authResolver,
		stripe:    stripeClient,
		responder: responder,
		limiter:   limiter,
		mailer:    mailer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		cfg:       cfg,
		logger:    logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Payments — auth is resolved inside the handler so its error
		// envelope can distinguish MISSING_AUTH from UNAUTHORIZED.
		r.Post("/payments/intent", s.handleCreatePaymentIntent)

		// Stripe webhook — no auth (signature verification inside handler).
		r.Post("/webhooks/stripe", s.handleStripeWebhook)

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			// Chat.
			r.Route("/chat/threads", func(r chi.Router) {
				r.Post("/", s.handleCreateThread)
				r.Get("/", s.handleListThreads)
				r.Route("/{threadID}", func(r chi.Router) {
					r.Patch("/", s.handleRenameThread)
					r.Delete("/", s.handleDeleteThread)
					r.Get("/messages", s.handleListMessages)
					r.Post("/messages", s.handleSendMessage)
				})
			})

			// Flashcards.
			r.Get("/subjects", s.handleListSubjects)
			r.Route("/collections", func(r chi.Router) {
				r.Get("/", s.handleListCollections)
				r.Post("/", s.handleCreateCollection)
				r.Route("/{collectionID}", func(r chi.Router) {
					r.Put("/", s.handleUpdateCollection)
					r.Delete("/", s.handleDeleteCollection)
					r.Get("/cards", s.handleListCards)
					r.Post("/cards", s.handleCreateCard)
					r.Get("/progress", s.handleCollectionProgress)
				})
			})
			r.Route("/cards/{cardID}", func(r chi.Router) {
				r.Put("/", s.handleUpdateCard)
				r.Delete("/", s.handleDeleteCard)
				r.Put("/progress", s.handleUpsertProgress)
			})

			// Enrollments.
			r.Get("/enrollments", s.handleListEnrollments)
		})
	})

	return r
}
