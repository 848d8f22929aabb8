package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/ai"
	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/ratelimit"
)

// historyLimit bounds how many prior messages are sent to the AI provider.
const historyLimit = 30

// ─── WIRE SHAPES ─────────────────────────────────────────────────────────────

type threadResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toThreadResponse(t db.ChatThread) threadResponse {
	return threadResponse{ID: t.ID, Title: t.Title, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func toMessageResponse(m db.ChatMessage) messageResponse {
	return messageResponse{ID: m.ID, Role: string(m.Role), Content: m.Content, CreatedAt: m.CreatedAt}
}

// ownedThread loads the thread from the URL param and verifies it belongs to
// the authenticated user. Writes the error response itself on failure.
func (s *Server) ownedThread(w http.ResponseWriter, r *http.Request) (db.ChatThread, bool) {
	threadID, err := uuid.Parse(chi.URLParam(r, "threadID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid thread id")
		return db.ChatThread{}, false
	}

	thread, err := s.q.GetChatThreadByID(r.Context(), threadID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "thread not found")
		return db.ChatThread{}, false
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get thread: %w", err))
		return db.ChatThread{}, false
	}

	if thread.UserID != userFrom(r).ID {
		// 404, not 403 — don't confirm the thread exists for someone else.
		respondErr(w, http.StatusNotFound, "thread not found")
		return db.ChatThread{}, false
	}

	return thread, true
}

// ─── POST /api/chat/threads ───────────────────────────────────────────────────

type createThreadRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
	var req createThreadRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		req.Title = "New chat"
	}

	thread, err := s.q.CreateChatThread(r.Context(), db.CreateChatThreadParams{
		UserID: userFrom(r).ID,
		Title:  req.Title,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create thread: %w", err))
		return
	}

	respond(w, http.StatusCreated, toThreadResponse(thread))
}

// ─── GET /api/chat/threads ────────────────────────────────────────────────────

func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := s.q.ListChatThreadsByUser(r.Context(), userFrom(r).ID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list threads: %w", err))
		return
	}

	out := make([]threadResponse, len(threads))
	for i, t := range threads {
		out[i] = toThreadResponse(t)
	}
	respond(w, http.StatusOK, out)
}

// ─── PATCH /api/chat/threads/{threadID} ───────────────────────────────────────

type renameThreadRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleRenameThread(w http.ResponseWriter, r *http.Request) {
	thread, ok := s.ownedThread(w, r)
	if !ok {
		return
	}

	var req renameThreadRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondErr(w, http.StatusBadRequest, "title is required")
		return
	}

	renamed, err := s.q.RenameChatThread(r.Context(), db.RenameChatThreadParams{
		ID:    thread.ID,
		Title: req.Title,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("rename thread: %w", err))
		return
	}

	respond(w, http.StatusOK, toThreadResponse(renamed))
}

// ─── DELETE /api/chat/threads/{threadID} ──────────────────────────────────────

func (s *Server) handleDeleteThread(w http.ResponseWriter, r *http.Request) {
	thread, ok := s.ownedThread(w, r)
	if !ok {
		return
	}

	if err := s.q.DeleteChatThread(r.Context(), thread.ID); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete thread: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── GET /api/chat/threads/{threadID}/messages ────────────────────────────────

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	thread, ok := s.ownedThread(w, r)
	if !ok {
		return
	}

	messages, err := s.q.ListChatMessagesByThread(r.Context(), thread.ID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list messages: %w", err))
		return
	}

	out := make([]messageResponse, len(messages))
	for i, m := range messages {
		out[i] = toMessageResponse(m)
	}
	respond(w, http.StatusOK, out)
}

// ─── POST /api/chat/threads/{threadID}/messages ───────────────────────────────

type sendMessageRequest struct {
	Content string `json:"content"`
}

type sendMessageResponse struct {
	UserMessage      messageResponse `json:"user_message"`
	AssistantMessage messageResponse `json:"assistant_message"`
}

// handleSendMessage stores the user's message, asks the AI provider for a
// reply with the recent history as context, and stores + returns the reply.
//
// The user message is persisted before the AI call so a provider outage never
// loses what the student typed; the client can retry and the history is
// intact.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	thread, ok := s.ownedThread(w, r)
	if !ok {
		return
	}

	var req sendMessageRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Content == "" {
		respondErr(w, http.StatusBadRequest, "content is required")
		return
	}

	user := userFrom(r)

	// ── Rate limit ────────────────────────────────────────────────────────────
	allowed, err := s.limiter.Allow(r.Context(), ratelimit.ChatKey(user.ID.String()),
		s.cfg.ChatRateLimit, s.cfg.ChatRateWindow)
	if err != nil {
		// A broken limiter should not take chat down. Log and allow.
		s.logger.Error("chat: rate limiter failed, allowing", "error", err, logField(r))
		allowed = true
	}
	if !allowed {
		respondErr(w, http.StatusTooManyRequests, "message rate limit reached, slow down")
		return
	}

	// ── Persist the user message ──────────────────────────────────────────────
	userMsg, err := s.q.CreateChatMessage(r.Context(), db.CreateChatMessageParams{
		ThreadID: thread.ID,
		Role:     db.ChatRoleUser,
		Content:  req.Content,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create user message: %w", err))
		return
	}

	// ── Build history and ask the AI ──────────────────────────────────────────
	history, err := s.q.ListChatMessagesByThread(r.Context(), thread.ID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list history: %w", err))
		return
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	conversation := make([]ai.Message, len(history))
	for i, m := range history {
		conversation[i] = ai.Message{Role: string(m.Role), Content: m.Content}
	}

	reply, err := s.responder.Reply(r.Context(), conversation)
	if err != nil {
		s.logger.Error("chat: AI reply failed", "thread_id", thread.ID, "error", err, logField(r))
		respondErr(w, http.StatusBadGateway, "assistant is unavailable, try again shortly")
		return
	}

	// ── Persist and return the assistant reply ────────────────────────────────
	assistantMsg, err := s.q.CreateChatMessage(r.Context(), db.CreateChatMessageParams{
		ThreadID: thread.ID,
		Role:     db.ChatRoleAssistant,
		Content:  reply,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create assistant message: %w", err))
		return
	}

	if err := s.q.TouchChatThread(r.Context(), thread.ID); err != nil {
		s.logger.Warn("chat: touch thread failed", "thread_id", thread.ID, "error", err, logField(r))
	}

	respond(w, http.StatusOK, sendMessageResponse{
		UserMessage:      toMessageResponse(userMsg),
		AssistantMessage: toMessageResponse(assistantMsg),
	})
}
