// Package ai defines the interface for AI tutor responses and provides
// Anthropic- and DeepSeek-backed implementations.
package ai

import "context"

// Message is one turn of a chat conversation, oldest first.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Responder is the interface the chat handlers use to generate tutor replies.
// The concrete implementations live in anthropic.go and deepseek.go.
// Tests inject a stub that returns canned responses.
type Responder interface {
	// Reply accepts the conversation history (oldest first, ending with the
	// user's latest message) and returns the assistant's reply text.
	//
	// Implementations must be safe to call concurrently.
	// A non-nil error means the entire call failed; the handler surfaces a
	// 502 to the client and persists nothing.
	Reply(ctx context.Context, messages []Message) (string, error)
}
