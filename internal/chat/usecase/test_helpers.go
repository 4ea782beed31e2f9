package usecase

import (
	"context"
	"errors"

	"gitagpt/internal/conversation"
	"gitagpt/internal/model"
	"gitagpt/internal/reflection"
	"gitagpt/internal/verse"
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

type mockClassifier struct {
	result    model.Classification
	callCount int
}

func (m *mockClassifier) Classify(ctx context.Context, text string) model.Classification {
	m.callCount++
	return m.result
}

type mockDetector struct {
	emotions  []model.Emotion
	err       error
	callCount int
}

func (m *mockDetector) Detect(ctx context.Context, text string) ([]model.Emotion, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return m.emotions, nil
}

type mockVerseUseCase struct {
	verses    []model.Verse
	err       error
	callCount int
	lastInput verse.SearchInput
}

func (m *mockVerseUseCase) Search(ctx context.Context, input verse.SearchInput) (verse.SearchOutput, error) {
	m.callCount++
	m.lastInput = input
	if m.err != nil {
		return verse.SearchOutput{}, m.err
	}
	return verse.SearchOutput{Verses: m.verses, Count: len(m.verses)}, nil
}

func (m *mockVerseUseCase) Get(ctx context.Context, id string) (model.Verse, error) {
	for _, v := range m.verses {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Verse{}, verse.ErrNotFound
}

type mockGenerator struct {
	result    reflection.Result
	callCount int
	lastInput reflection.GenerateInput
}

func (m *mockGenerator) Generate(ctx context.Context, input reflection.GenerateInput) reflection.Result {
	m.callCount++
	m.lastInput = input
	if m.result.Text == "" && !m.result.UsedFallback {
		return reflection.Result{Text: "May peace be with you."}
	}
	return m.result
}

type mockConversations struct {
	session        model.Session
	history        []model.Message
	createErr      error
	contextErr     error
	addMessageErr  error
	addedMessages  []conversation.AddMessageInput
	createCalls    int
	contextCalls   int
	endCalls       int
	getSessionErr  error
	endSessionErr  error
}

func (m *mockConversations) CreateSession(ctx context.Context, input conversation.CreateSessionInput) (model.Session, error) {
	m.createCalls++
	if m.createErr != nil {
		return model.Session{}, m.createErr
	}
	if m.session.ID == "" {
		m.session = model.Session{ID: "session-1", InteractionMode: input.Mode}
	}
	return m.session, nil
}

func (m *mockConversations) GetSession(ctx context.Context, id string) (model.Session, error) {
	if m.getSessionErr != nil {
		return model.Session{}, m.getSessionErr
	}
	return m.session, nil
}

func (m *mockConversations) AddMessage(ctx context.Context, input conversation.AddMessageInput) (model.Message, error) {
	if m.addMessageErr != nil {
		return model.Message{}, m.addMessageErr
	}
	m.addedMessages = append(m.addedMessages, input)
	return model.Message{ID: "m1", SessionID: input.SessionID, Role: input.Role, Content: input.Content}, nil
}

func (m *mockConversations) GetContext(ctx context.Context, sessionID string) ([]model.Message, error) {
	m.contextCalls++
	if m.contextErr != nil {
		return nil, m.contextErr
	}
	return m.history, nil
}

func (m *mockConversations) EndSession(ctx context.Context, id string) (model.Session, error) {
	m.endCalls++
	if m.endSessionErr != nil {
		return model.Session{}, m.endSessionErr
	}
	return m.session, nil
}

var errBoom = errors.New("boom")
