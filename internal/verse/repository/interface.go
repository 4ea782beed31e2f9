package repository

import (
	"context"

	"gitagpt/internal/model"
)

// VerseRepository is the interface for verse data access operations.
type VerseRepository interface {
	// SearchVerses performs semantic search over the verse collection.
	SearchVerses(ctx context.Context, opt SearchVersesOptions) ([]model.Verse, error)

	// GetVerse retrieves a single verse by ID.
	GetVerse(ctx context.Context, id string) (model.Verse, error)

	// EnsureCollection creates the verse collection if needed.
	EnsureCollection(ctx context.Context, vectorSize int) error

	// IndexVerses embeds and upserts verses into the collection.
	IndexVerses(ctx context.Context, verses []model.Verse) error
}
