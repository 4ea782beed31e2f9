package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"gitagpt/internal/conversation/repository"
	"gitagpt/internal/model"
	pkgLog "gitagpt/pkg/log"
	pkgSupabase "gitagpt/pkg/supabase"
)

type implRepository struct {
	client pkgSupabase.ISupabase
	l      pkgLog.Logger
}

// New creates a new Supabase conversation repository.
func New(client pkgSupabase.ISupabase, l pkgLog.Logger) repository.ConversationRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// CreateSession persists a new session.
func (r *implRepository) CreateSession(ctx context.Context, session model.Session) (model.Session, error) {
	var created []model.Session
	if err := r.client.Insert(ctx, tableSessions, session, &created); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to create session: %v", err)
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	if len(created) == 0 {
		return session, nil
	}
	return created[0], nil
}

// GetSession retrieves a session by ID.
func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("limit", "1")

	var sessions []model.Session
	if err := r.client.Select(ctx, tableSessions, query, &sessions); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to get session %s: %v", id, err)
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	if len(sessions) == 0 {
		return model.Session{}, repository.ErrSessionNotFound
	}
	return sessions[0], nil
}

// UpdateSession applies the given patch to a session.
func (r *implRepository) UpdateSession(ctx context.Context, id string, opt repository.UpdateSessionOptions) (model.Session, error) {
	patch := map[string]any{}
	if opt.EndedAt != nil {
		patch["ended_at"] = opt.EndedAt
	}
	if opt.MessageCount != nil {
		patch["message_count"] = *opt.MessageCount
	}
	if len(patch) == 0 {
		return r.GetSession(ctx, id)
	}

	query := url.Values{}
	query.Set("id", "eq."+id)

	var updated []model.Session
	if err := r.client.Update(ctx, tableSessions, query, patch, &updated); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to update session %s: %v", id, err)
		return model.Session{}, fmt.Errorf("failed to update session: %w", err)
	}
	if len(updated) == 0 {
		return model.Session{}, repository.ErrSessionNotFound
	}
	return updated[0], nil
}

// InsertMessage persists a message.
func (r *implRepository) InsertMessage(ctx context.Context, message model.Message) (model.Message, error) {
	var created []model.Message
	if err := r.client.Insert(ctx, tableMessages, message, &created); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to insert message: %v", err)
		return model.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}
	if len(created) == 0 {
		return message, nil
	}
	return created[0], nil
}

// ListRecentMessages returns the most recent messages of a session,
// newest first.
func (r *implRepository) ListRecentMessages(ctx context.Context, opt repository.ListRecentMessagesOptions) ([]model.Message, error) {
	query := url.Values{}
	query.Set("session_id", "eq."+opt.SessionID)
	query.Set("order", "sequence_number.desc")
	if opt.Limit > 0 {
		query.Set("limit", strconv.Itoa(opt.Limit))
	}

	var messages []model.Message
	if err := r.client.Select(ctx, tableMessages, query, &messages); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to list messages for session %s: %v", opt.SessionID, err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
