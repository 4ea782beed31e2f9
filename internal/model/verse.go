package model

// Verse represents a Bhagavad Gita verse with its translations.
type Verse struct {
	ID              string  `json:"id"`      // e.g. "BG2.47"
	Chapter         int     `json:"chapter"` // 1-18
	Verse           int     `json:"verse"`
	Shloka          string  `json:"shloka"`          // Sanskrit text
	Transliteration string  `json:"transliteration"` // Romanized Sanskrit
	EngMeaning      string  `json:"eng_meaning"`
	HinMeaning      string  `json:"hin_meaning,omitempty"`
	Similarity      float64 `json:"similarity"` // Search score, 0 when not from search
}
