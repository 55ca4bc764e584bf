package service

import "context"

// CompletionService defines the interface to a text-completion backend.
// The wiring layer decides between a hosted model and the deterministic
// fallback composer; callers cannot tell them apart.
type CompletionService interface {
	// Complete returns generated text for the given prompt.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
