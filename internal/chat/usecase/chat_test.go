package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitagpt/internal/chat"
	"gitagpt/internal/model"
	"gitagpt/internal/reflection"
)

func casualClassification() model.Classification {
	return model.Classification{Intent: model.IntentCasualChat, Confidence: 0.95, Method: model.MethodRuleBased}
}

func emotionalClassification() model.Classification {
	return model.Classification{Intent: model.IntentEmotionalQuery, Confidence: 0.85, Method: model.MethodModelBased}
}

func guidanceClassification() model.Classification {
	return model.Classification{Intent: model.IntentSpiritualGuidance, Confidence: 0.9, Method: model.MethodModelBased}
}

func threeVerses() []model.Verse {
	return []model.Verse{
		{ID: "BG2.47", Chapter: 2, Verse: 47, EngMeaning: "You have a right to perform your duty.", Similarity: 0.91},
		{ID: "BG2.14", Chapter: 2, Verse: 14, EngMeaning: "The contact between the senses and their objects.", Similarity: 0.84},
		{ID: "BG18.66", Chapter: 18, Verse: 66, EngMeaning: "Abandon all varieties of dharma.", Similarity: 0.80},
	}
}

type fixture struct {
	classifier    *mockClassifier
	detector      *mockDetector
	verses        *mockVerseUseCase
	generator     *mockGenerator
	conversations *mockConversations
	uc            chat.UseCase
}

func newFixture(classification model.Classification) *fixture {
	f := &fixture{
		classifier:    &mockClassifier{result: classification},
		detector:      &mockDetector{emotions: []model.Emotion{{Label: "nervousness", Confidence: 0.78, Emoji: "😰"}}},
		verses:        &mockVerseUseCase{verses: threeVerses()},
		generator:     &mockGenerator{result: reflection.Result{Text: "Partha, act without attachment to BG2.47."}},
		conversations: &mockConversations{},
	}
	f.uc = New(noopLogger{}, f.classifier, f.detector, f.verses, f.generator, f.conversations, 3)
	return f
}

func TestHandleValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyInput", func(t *testing.T) {
		f := newFixture(casualClassification())
		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: ""})
		if !errors.Is(err, chat.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("WhitespaceOnlyInput", func(t *testing.T) {
		f := newFixture(casualClassification())
		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "   \n\t "})
		if !errors.Is(err, chat.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
		if f.classifier.callCount != 0 {
			t.Error("validation must reject before classification")
		}
	})

	t.Run("InputTooLong", func(t *testing.T) {
		f := newFixture(casualClassification())
		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: strings.Repeat("a", MaxInputLength+1)})
		if !errors.Is(err, chat.ErrInputTooLong) {
			t.Errorf("expected ErrInputTooLong, got %v", err)
		}
	})

	t.Run("BoundaryLengthAccepted", func(t *testing.T) {
		f := newFixture(casualClassification())
		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: strings.Repeat("a", MaxInputLength)})
		if err != nil {
			t.Errorf("input at the limit should be accepted, got %v", err)
		}
	})

	t.Run("InvalidMode", func(t *testing.T) {
		f := newFixture(casualClassification())
		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "hello", Mode: "zen"})
		if !errors.Is(err, chat.ErrInvalidMode) {
			t.Errorf("expected ErrInvalidMode, got %v", err)
		}
	})

	t.Run("EmptyModeDefaultsWisdom", func(t *testing.T) {
		f := newFixture(guidanceClassification())
		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "what is dharma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.generator.lastInput.Mode != model.ModeWisdom {
			t.Errorf("expected wisdom default, got %s", f.generator.lastInput.Mode)
		}
	})
}

func TestHandleCasualBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("SkipsEmotionAndVerses", func(t *testing.T) {
		f := newFixture(casualClassification())

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "Hello!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.detector.callCount != 0 {
			t.Errorf("casual chat must not invoke the emotion detector, got %d calls", f.detector.callCount)
		}
		if f.verses.callCount != 0 {
			t.Errorf("casual chat must not invoke verse retrieval, got %d calls", f.verses.callCount)
		}
		if output.Emotion != nil {
			t.Error("casual chat emotion must be nil")
		}
		if len(output.Verses) != 0 {
			t.Errorf("casual chat verses must be empty, got %d", len(output.Verses))
		}
		if output.Intent != model.IntentCasualChat {
			t.Errorf("unexpected intent %s", output.Intent)
		}
		if output.IntentConfidence < 0.9 {
			t.Errorf("expected rule-based confidence, got %.2f", output.IntentConfidence)
		}
		if output.FallbackUsed {
			t.Error("clean casual path should not flag fallback")
		}
		if output.Reflection == "" {
			t.Error("reflection must be non-empty")
		}
	})

	t.Run("CasualPromptKind", func(t *testing.T) {
		f := newFixture(casualClassification())
		f.uc.Handle(ctx, chat.ChatInput{UserInput: "hey there"})
		if f.generator.lastInput.Kind != reflection.KindCasual {
			t.Errorf("expected casual prompt kind, got %s", f.generator.lastInput.Kind)
		}
	})
}

func TestHandleEmotionalBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("FullPipeline", func(t *testing.T) {
		f := newFixture(emotionalClassification())

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "I am feeling very anxious about my future"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Emotion == nil || output.Emotion.Label != "nervousness" {
			t.Errorf("expected dominant emotion nervousness, got %+v", output.Emotion)
		}
		if len(output.Verses) != 3 {
			t.Errorf("expected 3 verses, got %d", len(output.Verses))
		}
		if !strings.Contains(output.Reflection, "BG2.47") {
			t.Errorf("reflection should reference the top verse, got %q", output.Reflection)
		}
		if output.FallbackUsed {
			t.Error("clean emotional path should not flag fallback")
		}
		if f.verses.lastInput.Emotion != "nervousness" {
			t.Error("verse search should be biased by the detected emotion")
		}
	})

	t.Run("DetectorFailureProceedsWithoutEmotion", func(t *testing.T) {
		f := newFixture(emotionalClassification())
		f.detector.err = errBoom

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "I feel terrible"})
		if err != nil {
			t.Fatalf("detector failure must not fail the request: %v", err)
		}
		if output.Emotion != nil {
			t.Error("emotion must be nil after detector failure")
		}
		if !output.FallbackUsed {
			t.Error("detector failure must flag fallback")
		}
		if len(output.Verses) == 0 {
			t.Error("verse retrieval must still run after detector failure")
		}
		if f.verses.callCount != 1 {
			t.Errorf("verse retrieval should run once, got %d", f.verses.callCount)
		}
		if f.verses.lastInput.Emotion != "" {
			t.Error("search must be unbiased when no emotion is available")
		}
	})

	t.Run("EmotionPassedToGenerator", func(t *testing.T) {
		f := newFixture(emotionalClassification())
		f.uc.Handle(ctx, chat.ChatInput{UserInput: "I feel lost"})
		if f.generator.lastInput.Kind != reflection.KindEmotional {
			t.Errorf("expected emotional prompt kind, got %s", f.generator.lastInput.Kind)
		}
		if f.generator.lastInput.Emotion == nil {
			t.Error("generator should receive the detected emotion")
		}
	})
}

func TestHandleGuidanceBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("SkipsEmotion", func(t *testing.T) {
		f := newFixture(guidanceClassification())

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "what does the Gita teach about karma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.detector.callCount != 0 {
			t.Error("guidance branch must not invoke the emotion detector")
		}
		if output.Emotion != nil {
			t.Error("guidance emotion must be nil")
		}
		if len(output.Verses) != 3 {
			t.Errorf("expected 3 verses, got %d", len(output.Verses))
		}
		if f.generator.lastInput.Kind != reflection.KindGuidance {
			t.Errorf("expected guidance prompt kind, got %s", f.generator.lastInput.Kind)
		}
	})

	t.Run("EmptyResultsSubstituteDefaultVerse", func(t *testing.T) {
		f := newFixture(guidanceClassification())
		f.verses.verses = nil

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "what is dharma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Verses) != 1 || output.Verses[0].ID != "BG2.47" {
			t.Errorf("expected exactly the default verse, got %+v", output.Verses)
		}
		if !output.FallbackUsed {
			t.Error("default verse substitution must flag fallback")
		}
	})

	t.Run("SearchFailureSubstitutesDefaultVerse", func(t *testing.T) {
		f := newFixture(guidanceClassification())
		f.verses.err = errBoom

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "what is dharma"})
		if err != nil {
			t.Fatalf("search failure must not fail the request: %v", err)
		}
		if len(output.Verses) != 1 || output.Verses[0].ID != "BG2.47" {
			t.Errorf("expected exactly the default verse, got %+v", output.Verses)
		}
		if !output.FallbackUsed {
			t.Error("search failure must flag fallback")
		}
	})
}

func TestHandleFallbackChain(t *testing.T) {
	ctx := context.Background()

	t.Run("GenerationFallbackFlagged", func(t *testing.T) {
		f := newFixture(guidanceClassification())
		f.generator.result = reflection.Result{Text: "Template reflection.", UsedFallback: true}

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "what is dharma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.FallbackUsed {
			t.Error("generation fallback must flag fallback")
		}
		if output.Reflection == "" {
			t.Error("reflection must be non-empty")
		}
	})

	t.Run("HeuristicClassificationFlagged", func(t *testing.T) {
		f := newFixture(model.Classification{
			Intent:     model.IntentSpiritualGuidance,
			Confidence: 0.5,
			Method:     model.MethodKeywordHeuristic,
		})

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "tell me about karma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.FallbackUsed {
			t.Error("heuristic classification must flag fallback")
		}
	})

	t.Run("EverythingFailsStillAnswers", func(t *testing.T) {
		f := newFixture(model.Classification{
			Intent:     model.IntentEmotionalQuery,
			Confidence: 0.5,
			Method:     model.MethodKeywordHeuristic,
		})
		f.detector.err = errBoom
		f.verses.err = errBoom
		f.generator.result = reflection.Result{Text: "Generic supportive reflection.", UsedFallback: true}
		f.conversations.addMessageErr = errBoom
		f.conversations.createErr = errBoom

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "I feel hopeless about everything"})
		if err != nil {
			t.Fatalf("total downstream failure must not fail the request: %v", err)
		}
		if output.Reflection == "" {
			t.Error("reflection must be non-empty even under total failure")
		}
		if !output.FallbackUsed {
			t.Error("fallback must be flagged")
		}
	})
}

func TestHandlePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("NewSessionCreated", func(t *testing.T) {
		f := newFixture(casualClassification())

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.conversations.createCalls != 1 {
			t.Errorf("expected session creation, got %d calls", f.conversations.createCalls)
		}
		if output.SessionID != "session-1" {
			t.Errorf("expected session ID in output, got %q", output.SessionID)
		}
	})

	t.Run("ExistingSessionLoadsContext", func(t *testing.T) {
		f := newFixture(casualClassification())
		f.conversations.session = model.Session{ID: "session-7"}
		f.conversations.history = []model.Message{{Role: model.RoleUser, Content: "earlier message"}}

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "hello again", SessionID: "session-7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.conversations.createCalls != 0 {
			t.Error("existing session must not create a new one")
		}
		if f.conversations.contextCalls != 1 {
			t.Errorf("expected context load, got %d calls", f.conversations.contextCalls)
		}
		if len(f.generator.lastInput.History) != 1 {
			t.Error("history should be passed to the generator")
		}
		if output.SessionID != "session-7" {
			t.Errorf("unexpected session ID %q", output.SessionID)
		}
	})

	t.Run("BothTurnsPersisted", func(t *testing.T) {
		f := newFixture(emotionalClassification())

		_, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "I feel anxious"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.conversations.addedMessages) != 2 {
			t.Fatalf("expected user and assistant turns persisted, got %d", len(f.conversations.addedMessages))
		}
		userTurn := f.conversations.addedMessages[0]
		if userTurn.Role != model.RoleUser || userTurn.Emotion == nil {
			t.Errorf("user turn should carry the detected emotion: %+v", userTurn)
		}
		assistantTurn := f.conversations.addedMessages[1]
		if assistantTurn.Role != model.RoleAssistant || assistantTurn.VerseID != "BG2.47" {
			t.Errorf("assistant turn should carry the top verse ID: %+v", assistantTurn)
		}
	})

	t.Run("PersistenceFailureIgnored", func(t *testing.T) {
		f := newFixture(casualClassification())
		f.conversations.addMessageErr = errBoom

		output, err := f.uc.Handle(ctx, chat.ChatInput{UserInput: "hello"})
		if err != nil {
			t.Fatalf("persistence failure must not fail the request: %v", err)
		}
		if output.Reflection == "" {
			t.Error("reflection must still be returned")
		}
		if output.FallbackUsed {
			t.Error("persistence failure alone does not flag fallback")
		}
	})

	t.Run("NilConversationsDisablesPersistence", func(t *testing.T) {
		f := newFixture(casualClassification())
		uc := New(noopLogger{}, f.classifier, f.detector, f.verses, f.generator, nil, 3)

		output, err := uc.Handle(ctx, chat.ChatInput{UserInput: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SessionID != "" {
			t.Errorf("expected no session without persistence, got %q", output.SessionID)
		}
	})
}
