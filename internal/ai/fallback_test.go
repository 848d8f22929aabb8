package ai_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/studyforge/studyforge-backend/internal/ai"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

type stubResponder struct {
	reply string
	err   error
	calls int
}

func (s *stubResponder) Reply(_ context.Context, messages []ai.Message) (string, error) {
	s.calls++
	return s.reply, s.err
}

// discardLogger returns a *slog.Logger that silently drops all log output.
// Use this instead of nil — fallback.go calls f.logger.Warn() which panics on nil.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func conversation() []ai.Message {
	return []ai.Message{{Role: "user", Content: "Explain photosynthesis"}}
}

// ─── FallbackResponder ────────────────────────────────────────────────────────

func TestFallbackResponder_PrimarySucceeds_SecondaryNotCalled(t *testing.T) {
	primary := &stubResponder{reply: "Primary answer"}
	secondary := &stubResponder{reply: "Secondary answer"}

	responder := ai.NewFallbackResponder(primary, secondary, discardLogger())

	reply, err := responder.Reply(context.Background(), conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply != "Primary answer" {
		t.Errorf("expected primary reply, got: %q", reply)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.calls)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be called once, got %d calls", primary.calls)
	}
}

func TestFallbackResponder_PrimaryFails_SecondaryUsed(t *testing.T) {
	primary := &stubResponder{err: errors.New("anthropic timeout")}
	secondary := &stubResponder{reply: "Secondary answer"}

	responder := ai.NewFallbackResponder(primary, secondary, discardLogger())

	reply, err := responder.Reply(context.Background(), conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply != "Secondary answer" {
		t.Errorf("expected secondary reply, got: %q", reply)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be called once, got %d calls", primary.calls)
	}
	if secondary.calls != 1 {
		t.Errorf("secondary should be called once, got %d calls", secondary.calls)
	}
}

func TestFallbackResponder_BothFail_ReturnsError(t *testing.T) {
	primary := &stubResponder{err: errors.New("primary error")}
	secondary := &stubResponder{err: errors.New("secondary error")}

	responder := ai.NewFallbackResponder(primary, secondary, discardLogger())

	_, err := responder.Reply(context.Background(), conversation())
	if err == nil {
		t.Fatal("expected error when both responders fail")
	}
}

func TestFallbackResponder_NilPrimary_UsesSecondaryDirectly(t *testing.T) {
	secondary := &stubResponder{reply: "Only secondary"}

	responder := ai.NewFallbackResponder(nil, secondary, discardLogger())

	reply, err := responder.Reply(context.Background(), conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Only secondary" {
		t.Errorf("expected secondary reply, got: %q", reply)
	}
	if secondary.calls != 1 {
		t.Errorf("expected 1 secondary call, got %d", secondary.calls)
	}
}

func TestFallbackResponder_NilSecondary_PrimaryErrorBubbles(t *testing.T) {
	primaryErr := errors.New("primary blew up")
	primary := &stubResponder{err: primaryErr}

	responder := ai.NewFallbackResponder(primary, nil, discardLogger())

	_, err := responder.Reply(context.Background(), conversation())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, primaryErr) {
		t.Errorf("expected to find primaryErr in chain, got: %v", err)
	}
}
