package model

import "time"

// InteractionMode selects the voice of generated reflections.
type InteractionMode string

const (
	ModeWisdom   InteractionMode = "wisdom"
	ModeSocratic InteractionMode = "socratic"
	ModeStory    InteractionMode = "story"
)

// ValidMode reports whether mode is one of the supported interaction modes.
func ValidMode(mode InteractionMode) bool {
	switch mode {
	case ModeWisdom, ModeSocratic, ModeStory:
		return true
	}
	return false
}

// MessageRole identifies the sender of a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Session is a conversation session.
type Session struct {
	ID              string          `json:"id"`
	StartedAt       time.Time       `json:"started_at"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
	InteractionMode InteractionMode `json:"interaction_mode"`
	MessageCount    int             `json:"message_count"`
}

// Message is a single turn in a conversation session. Emotion fields are
// populated on user messages when detection succeeded, doubling as the
// mood log.
type Message struct {
	ID                string      `json:"id"`
	SessionID         string      `json:"session_id"`
	Role              MessageRole `json:"role"`
	Content           string      `json:"content"`
	EmotionLabel      string      `json:"emotion_label,omitempty"`
	EmotionConfidence float64     `json:"emotion_confidence,omitempty"`
	EmotionEmoji      string      `json:"emotion_emoji,omitempty"`
	EmotionColor      string      `json:"emotion_color,omitempty"`
	VerseID           string      `json:"verse_id,omitempty"`
	SequenceNumber    int         `json:"sequence_number"`
	CreatedAt         time.Time   `json:"created_at"`
}
