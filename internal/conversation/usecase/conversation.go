package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitagpt/internal/conversation"
	"gitagpt/internal/conversation/repository"
	"gitagpt/internal/model"
)

// CreateSession starts a new conversation session in the given mode.
func (uc *implUseCase) CreateSession(ctx context.Context, input conversation.CreateSessionInput) (model.Session, error) {
	mode := input.Mode
	if mode == "" {
		mode = model.ModeWisdom
	}
	if !model.ValidMode(mode) {
		return model.Session{}, conversation.ErrInvalidMode
	}

	session := model.Session{
		ID:              uuid.NewString(),
		StartedAt:       time.Now().UTC(),
		InteractionMode: mode,
	}

	created, err := uc.repo.CreateSession(ctx, session)
	if err != nil {
		uc.l.Errorf(ctx, "conversation usecase: create session failed: %v", err)
		return model.Session{}, err
	}

	uc.l.Infof(ctx, "conversation usecase: created session %s (mode %s)", created.ID, created.InteractionMode)
	return created, nil
}

// GetSession returns a session by ID.
func (uc *implUseCase) GetSession(ctx context.Context, id string) (model.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Session{}, conversation.ErrSessionNotFound
	}

	session, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return model.Session{}, conversation.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "conversation usecase: get session %s failed: %v", id, err)
		return model.Session{}, err
	}
	return session, nil
}

// AddMessage appends a message to a session. The sequence number is
// derived from the session's message count, which is bumped alongside.
func (uc *implUseCase) AddMessage(ctx context.Context, input conversation.AddMessageInput) (model.Message, error) {
	session, err := uc.GetSession(ctx, input.SessionID)
	if err != nil {
		return model.Message{}, err
	}
	if session.EndedAt != nil {
		return model.Message{}, conversation.ErrSessionEnded
	}

	message := model.Message{
		ID:             uuid.NewString(),
		SessionID:      session.ID,
		Role:           input.Role,
		Content:        input.Content,
		VerseID:        input.VerseID,
		SequenceNumber: session.MessageCount + 1,
		CreatedAt:      time.Now().UTC(),
	}
	if input.Emotion != nil {
		message.EmotionLabel = input.Emotion.Label
		message.EmotionConfidence = input.Emotion.Confidence
		message.EmotionEmoji = input.Emotion.Emoji
		message.EmotionColor = input.Emotion.Color
	}

	created, err := uc.repo.InsertMessage(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "conversation usecase: insert message failed: %v", err)
		return model.Message{}, err
	}

	count := message.SequenceNumber
	if _, err := uc.repo.UpdateSession(ctx, session.ID, repository.UpdateSessionOptions{MessageCount: &count}); err != nil {
		// The message is persisted; a stale count only skews sequences.
		uc.l.Warnf(ctx, "conversation usecase: failed to bump message count for session %s: %v", session.ID, err)
	}

	return created, nil
}

// GetContext returns the most recent messages of a session in
// chronological order, limited to the memory window.
func (uc *implUseCase) GetContext(ctx context.Context, sessionID string) ([]model.Message, error) {
	messages, err := uc.repo.ListRecentMessages(ctx, repository.ListRecentMessagesOptions{
		SessionID: sessionID,
		Limit:     ContextWindowMessages,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation usecase: get context for session %s failed: %v", sessionID, err)
		return nil, err
	}

	// Repository returns newest first; prompts want chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// EndSession marks a session as ended.
func (uc *implUseCase) EndSession(ctx context.Context, id string) (model.Session, error) {
	session, err := uc.GetSession(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	if session.EndedAt != nil {
		return session, nil
	}

	endedAt := time.Now().UTC()
	updated, err := uc.repo.UpdateSession(ctx, session.ID, repository.UpdateSessionOptions{EndedAt: &endedAt})
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return model.Session{}, conversation.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "conversation usecase: end session %s failed: %v", id, err)
		return model.Session{}, err
	}

	uc.l.Infof(ctx, "conversation usecase: ended session %s", updated.ID)
	return updated, nil
}
