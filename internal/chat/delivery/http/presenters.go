package http

import (
	"gitagpt/internal/chat"
	"gitagpt/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	UserInput string `json:"user_input" binding:"required"`
	SessionID string `json:"session_id" binding:"omitempty,max=64"`
	Mode      string `json:"interaction_mode" binding:"omitempty"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		UserInput: r.UserInput,
		SessionID: r.SessionID,
		Mode:      model.InteractionMode(r.Mode),
	}
}

// --- Response DTOs ---

type emotionResp struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Emoji      string  `json:"emoji"`
	Color      string  `json:"color"`
}

type chatVerseResp struct {
	ID              string  `json:"id"`
	Chapter         int     `json:"chapter"`
	Verse           int     `json:"verse"`
	Shloka          string  `json:"shloka"`
	Transliteration string  `json:"transliteration"`
	EngMeaning      string  `json:"eng_meaning"`
	Similarity      float64 `json:"similarity"`
}

type chatResp struct {
	Reflection       string         `json:"reflection"`
	Emotion          *emotionResp   `json:"emotion,omitempty"`
	Verses           []chatVerseResp `json:"verses"`
	Intent           string         `json:"intent"`
	IntentConfidence float64        `json:"intent_confidence"`
	FallbackUsed     bool           `json:"fallback_used"`
	SessionID        string         `json:"session_id,omitempty"`
}

func (h *handler) newChatResp(output chat.ChatOutput) chatResp {
	resp := chatResp{
		Reflection:       output.Reflection,
		Verses:           make([]chatVerseResp, 0, len(output.Verses)),
		Intent:           string(output.Intent),
		IntentConfidence: output.IntentConfidence,
		FallbackUsed:     output.FallbackUsed,
		SessionID:        output.SessionID,
	}
	if output.Emotion != nil {
		resp.Emotion = &emotionResp{
			Label:      output.Emotion.Label,
			Confidence: output.Emotion.Confidence,
			Emoji:      output.Emotion.Emoji,
			Color:      output.Emotion.Color,
		}
	}
	for _, v := range output.Verses {
		resp.Verses = append(resp.Verses, chatVerseResp{
			ID:              v.ID,
			Chapter:         v.Chapter,
			Verse:           v.Verse,
			Shloka:          v.Shloka,
			Transliteration: v.Transliteration,
			EngMeaning:      v.EngMeaning,
			Similarity:      v.Similarity,
		})
	}
	return resp
}
