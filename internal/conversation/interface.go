package conversation

import (
	"context"

	"gitagpt/internal/model"
)

// UseCase defines the business logic interface for the conversation domain.
type UseCase interface {
	// CreateSession starts a new conversation session in the given mode.
	CreateSession(ctx context.Context, input CreateSessionInput) (model.Session, error)

	// GetSession returns a session by ID.
	GetSession(ctx context.Context, id string) (model.Session, error)

	// AddMessage appends a message to a session, assigning its sequence
	// number and bumping the session's message count.
	AddMessage(ctx context.Context, input AddMessageInput) (model.Message, error)

	// GetContext returns the most recent messages of a session in
	// chronological order, limited to the memory window.
	GetContext(ctx context.Context, sessionID string) ([]model.Message, error)

	// EndSession marks a session as ended.
	EndSession(ctx context.Context, id string) (model.Session, error)
}
