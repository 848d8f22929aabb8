package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// fallbackResponder wraps two Responder implementations. It calls the primary
// first; if that returns an error it logs the failure and tries the secondary.
// This gives you Anthropic as the default with DeepSeek as the safety net
// (or vice versa — the choice is made in main.go).
type fallbackResponder struct {
	primary   Responder
	secondary Responder
	logger    *slog.Logger
}

// NewFallbackResponder returns a Responder that calls primary and, on failure,
// falls back to secondary. Either argument may be nil — if primary is nil
// it goes straight to secondary; if secondary is nil and primary fails, the
// primary error is returned directly.
func NewFallbackResponder(primary, secondary Responder, logger *slog.Logger) Responder {
	return &fallbackResponder{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Reply tries the primary Responder. If it fails and a secondary is
// configured, it logs the primary error and tries the secondary.
func (f *fallbackResponder) Reply(ctx context.Context, messages []Message) (string, error) {
	if f.primary != nil {
		reply, err := f.primary.Reply(ctx, messages)
		if err == nil {
			return reply, nil
		}
		f.logger.Warn("ai: primary responder failed, trying secondary",
			"error", err,
			"messages", len(messages),
		)
		if f.secondary == nil {
			return "", fmt.Errorf("ai: primary failed and no secondary configured: %w", err)
		}
	}

	return f.secondary.Reply(ctx, messages)
}
