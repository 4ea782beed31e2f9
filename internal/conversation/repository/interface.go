package repository

import (
	"context"

	"gitagpt/internal/model"
)

// ConversationRepository is the interface for conversation data access.
type ConversationRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session model.Session) (model.Session, error)

	// GetSession retrieves a session by ID.
	GetSession(ctx context.Context, id string) (model.Session, error)

	// UpdateSession applies the given patch to a session.
	UpdateSession(ctx context.Context, id string, opt UpdateSessionOptions) (model.Session, error)

	// InsertMessage persists a message.
	InsertMessage(ctx context.Context, message model.Message) (model.Message, error)

	// ListRecentMessages returns the most recent messages of a session,
	// newest first, limited to opt.Limit.
	ListRecentMessages(ctx context.Context, opt ListRecentMessagesOptions) ([]model.Message, error)
}
