package verse

import (
	"context"

	"gitagpt/internal/model"
)

// UseCase defines the business logic interface for the verse domain.
type UseCase interface {
	// Search performs semantic search over the Gita verses, optionally
	// biased by a detected emotion.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Get retrieves a single verse by its ID (e.g. "BG2.47").
	Get(ctx context.Context, id string) (model.Verse, error)
}
