package conversation

import "gitagpt/internal/model"

// CreateSessionInput is the input for starting a session.
type CreateSessionInput struct {
	Mode model.InteractionMode // wisdom, socratic, or story
}

// AddMessageInput is the input for appending a message to a session.
// Emotion and VerseID are optional and recorded only on turns where
// they apply.
type AddMessageInput struct {
	SessionID string
	Role      model.MessageRole
	Content   string
	Emotion   *model.Emotion
	VerseID   string
}
