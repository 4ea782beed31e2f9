package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitagpt/internal/conversation"
	"gitagpt/internal/conversation/repository"
	"gitagpt/internal/model"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	sessions map[string]model.Session
	messages []model.Message

	createSessionErr error
	insertMessageErr error
	updateSessionErr error
	listMessagesErr  error

	updateSessionCalls int
	lastListOpt        repository.ListRecentMessagesOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]model.Session{}}
}

func (m *mockRepo) CreateSession(ctx context.Context, session model.Session) (model.Session, error) {
	if m.createSessionErr != nil {
		return model.Session{}, m.createSessionErr
	}
	m.sessions[session.ID] = session
	return session, nil
}

func (m *mockRepo) GetSession(ctx context.Context, id string) (model.Session, error) {
	session, ok := m.sessions[id]
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockRepo) UpdateSession(ctx context.Context, id string, opt repository.UpdateSessionOptions) (model.Session, error) {
	m.updateSessionCalls++
	if m.updateSessionErr != nil {
		return model.Session{}, m.updateSessionErr
	}
	session, ok := m.sessions[id]
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if opt.EndedAt != nil {
		session.EndedAt = opt.EndedAt
	}
	if opt.MessageCount != nil {
		session.MessageCount = *opt.MessageCount
	}
	m.sessions[id] = session
	return session, nil
}

func (m *mockRepo) InsertMessage(ctx context.Context, message model.Message) (model.Message, error) {
	if m.insertMessageErr != nil {
		return model.Message{}, m.insertMessageErr
	}
	m.messages = append(m.messages, message)
	return message, nil
}

func (m *mockRepo) ListRecentMessages(ctx context.Context, opt repository.ListRecentMessagesOptions) ([]model.Message, error) {
	m.lastListOpt = opt
	if m.listMessagesErr != nil {
		return nil, m.listMessagesErr
	}
	// Newest first, as the real repository returns.
	var out []model.Message
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].SessionID == opt.SessionID {
			out = append(out, m.messages[i])
		}
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newMockRepo()
		uc := New(noopLogger{}, repo)

		session, err := uc.CreateSession(ctx, conversation.CreateSessionInput{Mode: model.ModeSocratic})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.ID == "" {
			t.Error("expected generated session ID")
		}
		if session.InteractionMode != model.ModeSocratic {
			t.Errorf("expected socratic mode, got %s", session.InteractionMode)
		}
		if session.EndedAt != nil {
			t.Error("new session should not be ended")
		}
	})

	t.Run("EmptyModeDefaultsWisdom", func(t *testing.T) {
		uc := New(noopLogger{}, newMockRepo())

		session, err := uc.CreateSession(ctx, conversation.CreateSessionInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.InteractionMode != model.ModeWisdom {
			t.Errorf("expected wisdom default, got %s", session.InteractionMode)
		}
	})

	t.Run("InvalidMode", func(t *testing.T) {
		uc := New(noopLogger{}, newMockRepo())

		_, err := uc.CreateSession(ctx, conversation.CreateSessionInput{Mode: "zen"})
		if !errors.Is(err, conversation.ErrInvalidMode) {
			t.Errorf("expected ErrInvalidMode, got %v", err)
		}
	})
}

func TestAddMessage(t *testing.T) {
	ctx := context.Background()

	seedSession := func(repo *mockRepo, count int) model.Session {
		session := model.Session{
			ID:              "session-1",
			StartedAt:       time.Now().UTC(),
			InteractionMode: model.ModeWisdom,
			MessageCount:    count,
		}
		repo.sessions[session.ID] = session
		return session
	}

	t.Run("AssignsSequenceAndBumpsCount", func(t *testing.T) {
		repo := newMockRepo()
		seedSession(repo, 2)
		uc := New(noopLogger{}, repo)

		msg, err := uc.AddMessage(ctx, conversation.AddMessageInput{
			SessionID: "session-1",
			Role:      model.RoleUser,
			Content:   "I feel lost",
			Emotion:   &model.Emotion{Label: "sadness", Confidence: 0.7, Emoji: "😢"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.SequenceNumber != 3 {
			t.Errorf("expected sequence 3, got %d", msg.SequenceNumber)
		}
		if msg.EmotionLabel != "sadness" || msg.EmotionEmoji != "😢" {
			t.Errorf("emotion fields not carried: %+v", msg)
		}
		if repo.sessions["session-1"].MessageCount != 3 {
			t.Errorf("expected message count bumped to 3, got %d", repo.sessions["session-1"].MessageCount)
		}
	})

	t.Run("SessionNotFound", func(t *testing.T) {
		uc := New(noopLogger{}, newMockRepo())

		_, err := uc.AddMessage(ctx, conversation.AddMessageInput{SessionID: "missing", Role: model.RoleUser, Content: "hi"})
		if !errors.Is(err, conversation.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("EndedSessionRejected", func(t *testing.T) {
		repo := newMockRepo()
		session := seedSession(repo, 0)
		ended := time.Now().UTC()
		session.EndedAt = &ended
		repo.sessions[session.ID] = session
		uc := New(noopLogger{}, repo)

		_, err := uc.AddMessage(ctx, conversation.AddMessageInput{SessionID: session.ID, Role: model.RoleUser, Content: "hi"})
		if !errors.Is(err, conversation.ErrSessionEnded) {
			t.Errorf("expected ErrSessionEnded, got %v", err)
		}
	})

	t.Run("CountBumpFailureDoesNotFail", func(t *testing.T) {
		repo := newMockRepo()
		seedSession(repo, 0)
		repo.updateSessionErr = errors.New("db down")
		uc := New(noopLogger{}, repo)

		msg, err := uc.AddMessage(ctx, conversation.AddMessageInput{SessionID: "session-1", Role: model.RoleUser, Content: "hi"})
		if err != nil {
			t.Fatalf("message insert succeeded, count bump must not fail the call: %v", err)
		}
		if msg.SequenceNumber != 1 {
			t.Errorf("expected sequence 1, got %d", msg.SequenceNumber)
		}
	})
}

func TestGetContext(t *testing.T) {
	ctx := context.Background()

	t.Run("ChronologicalWindow", func(t *testing.T) {
		repo := newMockRepo()
		repo.sessions["session-1"] = model.Session{ID: "session-1", MessageCount: 12}
		for i := 1; i <= 12; i++ {
			repo.messages = append(repo.messages, model.Message{
				ID:             "m" + string(rune('a'+i-1)),
				SessionID:      "session-1",
				SequenceNumber: i,
			})
		}
		uc := New(noopLogger{}, repo)

		messages, err := uc.GetContext(ctx, "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != ContextWindowMessages {
			t.Fatalf("expected %d messages, got %d", ContextWindowMessages, len(messages))
		}
		if messages[0].SequenceNumber != 3 || messages[len(messages)-1].SequenceNumber != 12 {
			t.Errorf("expected chronological window 3..12, got %d..%d",
				messages[0].SequenceNumber, messages[len(messages)-1].SequenceNumber)
		}
		if repo.lastListOpt.Limit != ContextWindowMessages {
			t.Errorf("expected list limit %d, got %d", ContextWindowMessages, repo.lastListOpt.Limit)
		}
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := newMockRepo()
		repo.listMessagesErr = errors.New("db down")
		uc := New(noopLogger{}, repo)

		if _, err := uc.GetContext(ctx, "session-1"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()

	t.Run("SetsEndedAt", func(t *testing.T) {
		repo := newMockRepo()
		repo.sessions["session-1"] = model.Session{ID: "session-1", StartedAt: time.Now().UTC()}
		uc := New(noopLogger{}, repo)

		session, err := uc.EndSession(ctx, "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.EndedAt == nil {
			t.Error("expected ended_at to be set")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo := newMockRepo()
		ended := time.Now().UTC()
		repo.sessions["session-1"] = model.Session{ID: "session-1", EndedAt: &ended}
		uc := New(noopLogger{}, repo)

		session, err := uc.EndSession(ctx, "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.EndedAt == nil {
			t.Error("expected already-ended session returned as is")
		}
		if repo.updateSessionCalls != 0 {
			t.Errorf("expected no update for already-ended session, got %d calls", repo.updateSessionCalls)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		uc := New(noopLogger{}, newMockRepo())

		_, err := uc.EndSession(ctx, "missing")
		if !errors.Is(err, conversation.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}
