package api

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/store"
)

// ─── WIRE SHAPES ─────────────────────────────────────────────────────────────

type subjectResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Position int32     `json:"position"`
}

type collectionResponse struct {
	ID          uuid.UUID `json:"id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type cardResponse struct {
	ID        uuid.UUID `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Position  int32     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type progressResponse struct {
	CardID         uuid.UUID `json:"card_id"`
	Mastery        int16     `json:"mastery"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}

type enrollmentResponse struct {
	ID         uuid.UUID `json:"id"`
	CourseID   uuid.UUID `json:"course_id"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolled_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func toCollectionResponse(c db.Collection) collectionResponse {
	return collectionResponse{
		ID:          c.ID,
		SubjectID:   c.SubjectID,
		Title:       c.Title,
		Description: c.Description.String,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCardResponse(c db.Card) cardResponse {
	return cardResponse{
		ID:        c.ID,
		Front:     c.Front,
		Back:      c.Back,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ownedCollection loads the collection from the URL param and verifies it
// belongs to the authenticated user. Writes the error response on failure.
func (s *Server) ownedCollection(w http.ResponseWriter, r *http.Request) (db.Collection, bool) {
	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid collection id")
		return db.Collection{}, false
	}

	collection, err := s.q.GetCollectionByID(r.Context(), collectionID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "collection not found")
		return db.Collection{}, false
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get collection: %w", err))
		return db.Collection{}, false
	}

	if collection.UserID != userFrom(r).ID {
		respondErr(w, http.StatusNotFound, "collection not found")
		return db.Collection{}, false
	}

	return collection, true
}

// ownedCard resolves the card from the URL param and verifies its collection
// belongs to the authenticated user.
func (s *Server) ownedCard(w http.ResponseWriter, r *http.Request) (db.Card, bool) {
	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid card id")
		return db.Card{}, false
	}

	card, err := s.q.GetCardByID(r.Context(), cardID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "card not found")
		return db.Card{}, false
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get card: %w", err))
		return db.Card{}, false
	}

	collection, err := s.q.GetCollectionByID(r.Context(), card.CollectionID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get card collection: %w", err))
		return db.Card{}, false
	}
	if collection.UserID != userFrom(r).ID {
		respondErr(w, http.StatusNotFound, "card not found")
		return db.Card{}, false
	}

	return card, true
}

// ─── GET /api/subjects ────────────────────────────────────────────────────────

func (s *Server) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.q.ListSubjects(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list subjects: %w", err))
		return
	}

	out := make([]subjectResponse, len(subjects))
	for i, sub := range subjects {
		out[i] = subjectResponse{ID: sub.ID, Name: sub.Name, Slug: sub.Slug, Position: sub.Position}
	}
	respond(w, http.StatusOK, out)
}

// ─── GET /api/collections ─────────────────────────────────────────────────────

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.q.ListCollectionsByUser(r.Context(), userFrom(r).ID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list collections: %w", err))
		return
	}

	out := make([]collectionResponse, len(collections))
	for i, c := range collections {
		out[i] = toCollectionResponse(c)
	}
	respond(w, http.StatusOK, out)
}

// ─── POST /api/collections ────────────────────────────────────────────────────

type createCollectionRequest struct {
	SubjectID   string `json:"subject_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// handleCreateCollection creates a flashcard collection. Users without an
// active subscription are capped at cfg.FreeCollectionLimit collections;
// subscribers are uncapped.
func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid request parameters")
		return
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid subject id")
		return
	}
	if _, err := s.q.GetSubjectByID(r.Context(), subjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondErr(w, http.StatusNotFound, "subject not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("get subject: %w", err))
		return
	}

	user := userFrom(r)

	limit := s.cfg.FreeCollectionLimit
	sub, err := s.q.GetUserSubscription(r.Context(), user.ID)
	switch {
	case err == nil && sub.Status == db.SubscriptionStatusActive:
		limit = 0 // uncapped
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		s.respondInternalErr(w, r, fmt.Errorf("get subscription: %w", err))
		return
	}

	collection, err := s.store.CreateCollection(r.Context(), db.CreateCollectionParams{
		UserID:      user.ID,
		SubjectID:   subjectID,
		Title:       req.Title,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
	}, limit)
	if errors.Is(err, store.ErrCollectionLimit) {
		respondErr(w, http.StatusPaymentRequired, "free collection limit reached, upgrade to create more")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create collection: %w", err))
		return
	}

	respond(w, http.StatusCreated, toCollectionResponse(collection))
}

// ─── PUT /api/collections/{collectionID} ──────────────────────────────────────

type updateCollectionRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (s *Server) handleUpdateCollection(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.ownedCollection(w, r)
	if !ok {
		return
	}

	var req updateCollectionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid request parameters")
		return
	}

	updated, err := s.q.UpdateCollection(r.Context(), db.UpdateCollectionParams{
		ID:          collection.ID,
		Title:       req.Title,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("update collection: %w", err))
		return
	}

	respond(w, http.StatusOK, toCollectionResponse(updated))
}

// ─── DELETE /api/collections/{collectionID} ───────────────────────────────────

func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.ownedCollection(w, r)
	if !ok {
		return
	}

	if err := s.q.DeleteCollection(r.Context(), collection.ID); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete collection: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── GET /api/collections/{collectionID}/cards ────────────────────────────────

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.ownedCollection(w, r)
	if !ok {
		return
	}

	cards, err := s.q.ListCardsByCollection(r.Context(), collection.ID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list cards: %w", err))
		return
	}

	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	respond(w, http.StatusOK, out)
}

// ─── POST /api/collections/{collectionID}/cards ───────────────────────────────

type createCardRequest struct {
	Front    string `json:"front" validate:"required,max=4000"`
	Back     string `json:"back" validate:"required,max=4000"`
	Position int32  `json:"position" validate:"min=0"`
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.ownedCollection(w, r)
	if !ok {
		return
	}

	var req createCardRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid request parameters")
		return
	}

	card, err := s.q.CreateCard(r.Context(), db.CreateCardParams{
		CollectionID: collection.ID,
		Front:        req.Front,
		Back:         req.Back,
		Position:     req.Position,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create card: %w", err))
		return
	}

	respond(w, http.StatusCreated, toCardResponse(card))
}

// ─── GET /api/collections/{collectionID}/progress ─────────────────────────────

type masteryResponse struct {
	TotalCards    int64   `json:"total_cards"`
	MasteredCards int64   `json:"mastered_cards"`
	Percent       float64 `json:"percent"`
}

func (s *Server) handleCollectionProgress(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.ownedCollection(w, r)
	if !ok {
		return
	}

	row, err := s.q.GetCollectionMastery(r.Context(), db.GetCollectionMasteryParams{
		UserID:       userFrom(r).ID,
		CollectionID: collection.ID,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get mastery: %w", err))
		return
	}

	resp := masteryResponse{TotalCards: row.TotalCards, MasteredCards: row.MasteredCards}
	if row.TotalCards > 0 {
		resp.Percent = math.Round(float64(row.MasteredCards)/float64(row.TotalCards)*1000) / 10
	}
	respond(w, http.StatusOK, resp)
}

// ─── PUT /api/cards/{cardID} ──────────────────────────────────────────────────

type updateCardRequest struct {
	Front string `json:"front" validate:"required,max=4000"`
	Back  string `json:"back" validate:"required,max=4000"`
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	card, ok := s.ownedCard(w, r)
	if !ok {
		return
	}

	var req updateCardRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid request parameters")
		return
	}

	updated, err := s.q.UpdateCard(r.Context(), db.UpdateCardParams{
		ID:    card.ID,
		Front: req.Front,
		Back:  req.Back,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("update card: %w", err))
		return
	}

	respond(w, http.StatusOK, toCardResponse(updated))
}

// ─── DELETE /api/cards/{cardID} ───────────────────────────────────────────────

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	card, ok := s.ownedCard(w, r)
	if !ok {
		return
	}

	if err := s.q.DeleteCard(r.Context(), card.ID); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete card: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── PUT /api/cards/{cardID}/progress ─────────────────────────────────────────

type upsertProgressRequest struct {
	Mastery *int16 `json:"mastery" validate:"required,min=0,max=5"`
}

func (s *Server) handleUpsertProgress(w http.ResponseWriter, r *http.Request) {
	card, ok := s.ownedCard(w, r)
	if !ok {
		return
	}

	var req upsertProgressRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondErr(w, http.StatusBadRequest, "mastery must be between 0 and 5")
		return
	}

	progress, err := s.q.UpsertCardProgress(r.Context(), db.UpsertCardProgressParams{
		UserID:  userFrom(r).ID,
		CardID:  card.ID,
		Mastery: *req.Mastery,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("upsert progress: %w", err))
		return
	}

	respond(w, http.StatusOK, progressResponse{
		CardID:         progress.CardID,
		Mastery:        progress.Mastery,
		LastReviewedAt: progress.LastReviewedAt,
	})
}

// ─── GET /api/enrollments ─────────────────────────────────────────────────────

func (s *Server) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := s.q.ListEnrollmentsByUser(r.Context(), userFrom(r).ID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list enrollments: %w", err))
		return
	}

	out := make([]enrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		out[i] = enrollmentResponse{
			ID:         e.ID,
			CourseID:   e.CourseID,
			Status:     string(e.Status),
			EnrolledAt: e.EnrolledAt,
			ExpiresAt:  e.ExpiresAt,
		}
	}
	respond(w, http.StatusOK, out)
}
