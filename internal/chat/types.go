package chat

import "gitagpt/internal/model"

// ChatInput is a single user message to route.
type ChatInput struct {
	UserInput string
	SessionID string                // empty starts a new session
	Mode      model.InteractionMode // empty defaults to wisdom
}

// ChatOutput is the response envelope. Emotion is nil when detection
// was skipped or failed; Verses is empty for casual chat.
type ChatOutput struct {
	Reflection       string         `json:"reflection"`
	Emotion          *model.Emotion `json:"emotion,omitempty"`
	Verses           []model.Verse  `json:"verses"`
	Intent           model.Intent   `json:"intent"`
	IntentConfidence float64        `json:"intent_confidence"`
	FallbackUsed     bool           `json:"fallback_used"`
	SessionID        string         `json:"session_id,omitempty"`
}
