package http

import (
	"time"

	"gitagpt/internal/conversation"
	"gitagpt/internal/model"
)

// --- Request DTOs ---

type createSessionReq struct {
	Mode string `json:"mode" binding:"omitempty,oneof=wisdom socratic story"`
}

func (r createSessionReq) toInput() conversation.CreateSessionInput {
	return conversation.CreateSessionInput{
		Mode: model.InteractionMode(r.Mode),
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID              string     `json:"id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	InteractionMode string     `json:"interaction_mode"`
	MessageCount    int        `json:"message_count"`
}

type messageResp struct {
	ID                string    `json:"id"`
	Role              string    `json:"role"`
	Content           string    `json:"content"`
	EmotionLabel      string    `json:"emotion_label,omitempty"`
	EmotionConfidence float64   `json:"emotion_confidence,omitempty"`
	EmotionEmoji      string    `json:"emotion_emoji,omitempty"`
	EmotionColor      string    `json:"emotion_color,omitempty"`
	VerseID           string    `json:"verse_id,omitempty"`
	SequenceNumber    int       `json:"sequence_number"`
	CreatedAt         time.Time `json:"created_at"`
}

type contextResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
	Count     int           `json:"count"`
}

func newSessionResp(s model.Session) sessionResp {
	return sessionResp{
		ID:              s.ID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		InteractionMode: string(s.InteractionMode),
		MessageCount:    s.MessageCount,
	}
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:                m.ID,
		Role:              string(m.Role),
		Content:           m.Content,
		EmotionLabel:      m.EmotionLabel,
		EmotionConfidence: m.EmotionConfidence,
		EmotionEmoji:      m.EmotionEmoji,
		EmotionColor:      m.EmotionColor,
		VerseID:           m.VerseID,
		SequenceNumber:    m.SequenceNumber,
		CreatedAt:         m.CreatedAt,
	}
}

func (h *handler) newContextResp(sessionID string, messages []model.Message) contextResp {
	out := make([]messageResp, 0, len(messages))
	for _, m := range messages {
		out = append(out, newMessageResp(m))
	}
	return contextResp{
		SessionID: sessionID,
		Messages:  out,
		Count:     len(out),
	}
}
