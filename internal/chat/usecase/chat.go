package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"gitagpt/internal/chat"
	"gitagpt/internal/conversation"
	"gitagpt/internal/emotion"
	"gitagpt/internal/model"
	"gitagpt/internal/reflection"
	"gitagpt/internal/verse"
)

// Handle routes one user message. Only validation errors escape; every
// downstream failure degrades per the branch's fallback policy.
func (uc *implUseCase) Handle(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	userInput := strings.TrimSpace(input.UserInput)
	if userInput == "" {
		return chat.ChatOutput{}, chat.ErrEmptyInput
	}
	if utf8.RuneCountInString(userInput) > MaxInputLength {
		return chat.ChatOutput{}, chat.ErrInputTooLong
	}

	mode := input.Mode
	if mode == "" {
		mode = model.ModeWisdom
	}
	if !model.ValidMode(mode) {
		return chat.ChatOutput{}, chat.ErrInvalidMode
	}

	sessionID, history := uc.resolveSession(ctx, input.SessionID, mode)

	classification := uc.classifier.Classify(ctx, userInput)
	uc.l.Infof(ctx, "%s: intent=%s confidence=%.2f method=%s", LogPrefixHandle,
		classification.Intent, classification.Confidence, classification.Method)

	var (
		detected     *model.Emotion
		verses       []model.Verse
		result       reflection.Result
		fallbackUsed = classification.Method == model.MethodKeywordHeuristic
	)

	switch classification.Intent {
	case model.IntentCasualChat:
		// Emotion detection and verse retrieval are not invoked at all.
		result = uc.generator.Generate(ctx, reflection.GenerateInput{
			UserInput: userInput,
			Mode:      mode,
			Kind:      reflection.KindCasual,
			History:   history,
		})
		verses = []model.Verse{}

	case model.IntentEmotionalQuery:
		var emotionFailed bool
		detected, emotionFailed = uc.detectEmotion(ctx, userInput)
		fallbackUsed = fallbackUsed || emotionFailed

		var verseFellBack bool
		verses, verseFellBack = uc.retrieveVerses(ctx, userInput, detected)
		fallbackUsed = fallbackUsed || verseFellBack

		result = uc.generator.Generate(ctx, reflection.GenerateInput{
			UserInput: userInput,
			Mode:      mode,
			Kind:      reflection.KindEmotional,
			Emotion:   detected,
			Verses:    verses,
			History:   history,
		})

	default: // spiritual guidance
		var verseFellBack bool
		verses, verseFellBack = uc.retrieveVerses(ctx, userInput, nil)
		fallbackUsed = fallbackUsed || verseFellBack

		result = uc.generator.Generate(ctx, reflection.GenerateInput{
			UserInput: userInput,
			Mode:      mode,
			Kind:      reflection.KindGuidance,
			Verses:    verses,
			History:   history,
		})
	}

	fallbackUsed = fallbackUsed || result.UsedFallback

	uc.persistExchange(ctx, sessionID, userInput, result.Text, detected, verses)

	return chat.ChatOutput{
		Reflection:       result.Text,
		Emotion:          detected,
		Verses:           verses,
		Intent:           classification.Intent,
		IntentConfidence: classification.Confidence,
		FallbackUsed:     fallbackUsed,
		SessionID:        sessionID,
	}, nil
}

// resolveSession returns the session ID to use and any prior context.
// Session handling is best-effort; failures leave the request
// sessionless rather than failing it.
func (uc *implUseCase) resolveSession(ctx context.Context, sessionID string, mode model.InteractionMode) (string, []model.Message) {
	if uc.conversations == nil {
		return sessionID, nil
	}

	if sessionID == "" {
		session, err := uc.conversations.CreateSession(ctx, conversation.CreateSessionInput{Mode: mode})
		if err != nil {
			uc.l.Warnf(ctx, "%s: failed to create session: %v", LogPrefixHandle, err)
			return "", nil
		}
		return session.ID, nil
	}

	history, err := uc.conversations.GetContext(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to load context for session %s: %v", LogPrefixHandle, sessionID, err)
		return sessionID, nil
	}
	return sessionID, history
}

// detectEmotion runs the detector and reports whether it fell back.
// A detector error yields a nil emotion, never a failed request.
func (uc *implUseCase) detectEmotion(ctx context.Context, userInput string) (*model.Emotion, bool) {
	emotions, err := uc.detector.Detect(ctx, userInput)
	if err != nil {
		uc.l.Warnf(ctx, "%s: emotion detection failed, proceeding without: %v", LogPrefixHandle, err)
		return nil, true
	}
	if len(emotions) == 0 {
		return nil, false
	}
	dominant := emotion.Dominant(emotions)
	return &dominant, false
}

// retrieveVerses searches the verse collection, substituting the
// configured default verse when the search fails or returns nothing.
func (uc *implUseCase) retrieveVerses(ctx context.Context, userInput string, detected *model.Emotion) ([]model.Verse, bool) {
	searchInput := verse.SearchInput{
		Query: userInput,
		TopK:  uc.topK,
	}
	if detected != nil {
		searchInput.Emotion = detected.Label
	}

	output, err := uc.verses.Search(ctx, searchInput)
	if err != nil {
		uc.l.Warnf(ctx, "%s: verse retrieval failed, substituting default: %v", LogPrefixHandle, err)
		return []model.Verse{defaultVerse}, true
	}
	if len(output.Verses) == 0 {
		uc.l.Warnf(ctx, "%s: verse retrieval returned nothing, substituting default", LogPrefixHandle)
		return []model.Verse{defaultVerse}, true
	}
	return output.Verses, false
}

// persistExchange writes the user and assistant turns. Persistence is
// best-effort and never affects the response.
func (uc *implUseCase) persistExchange(ctx context.Context, sessionID, userInput, reflectionText string, detected *model.Emotion, verses []model.Verse) {
	if uc.conversations == nil || sessionID == "" {
		return
	}

	if _, err := uc.conversations.AddMessage(ctx, conversation.AddMessageInput{
		SessionID: sessionID,
		Role:      model.RoleUser,
		Content:   userInput,
		Emotion:   detected,
	}); err != nil {
		uc.l.Warnf(ctx, "%s: failed to persist user message: %v", LogPrefixHandle, err)
	}

	var verseID string
	if len(verses) > 0 {
		verseID = verses[0].ID
	}
	if _, err := uc.conversations.AddMessage(ctx, conversation.AddMessageInput{
		SessionID: sessionID,
		Role:      model.RoleAssistant,
		Content:   reflectionText,
		VerseID:   verseID,
	}); err != nil {
		uc.l.Warnf(ctx, "%s: failed to persist assistant message: %v", LogPrefixHandle, err)
	}
}
