package chat

import (
	"context"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Handle routes a user message through classification, the
	// intent-selected pipeline, and response assembly. For well-formed
	// input it always returns a ChatOutput; only validation errors
	// escape.
	Handle(ctx context.Context, input ChatInput) (ChatOutput, error)
}
