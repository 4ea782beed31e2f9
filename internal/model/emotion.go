package model

// Emotion is a detected emotion with display hints for the client.
type Emotion struct {
	Label      string  `json:"label"` // GoEmotions label, e.g. "nervousness"
	Confidence float64 `json:"confidence"`
	Emoji      string  `json:"emoji"`
	Color      string  `json:"color"`
}
