package supabase

import (
	"context"
	"net/url"
)

// ISupabase defines the interface for the Supabase PostgREST client.
// Implementations are safe for concurrent use.
type ISupabase interface {
	// Insert creates rows in a table. When out is non-nil the created
	// rows are decoded into it.
	Insert(ctx context.Context, table string, record any, out any) error

	// Select reads rows from a table filtered by PostgREST query params.
	Select(ctx context.Context, table string, query url.Values, out any) error

	// Update patches rows matching the query params. When out is non-nil
	// the updated rows are decoded into it.
	Update(ctx context.Context, table string, query url.Values, patch any, out any) error

	// Delete removes rows matching the query params.
	Delete(ctx context.Context, table string, query url.Values) error
}

// New creates a new Supabase client with the given configuration
func New(cfg Config) (ISupabase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSupabaseImpl(cfg), nil
}
