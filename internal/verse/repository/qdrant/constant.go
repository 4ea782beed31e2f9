package qdrant

import "github.com/google/uuid"

// emotionThemes maps GoEmotions labels to Gita theme keywords used to
// bias verse retrieval toward the emotional state.
var emotionThemes = map[string][]string{
	// Anxiety and worry
	"nervousness": {"surrender", "faith", "detachment"},
	"fear":        {"courage", "protection", "divine_support"},

	// Confusion and doubt
	"confusion": {"clarity", "wisdom", "guidance"},
	"curiosity": {"knowledge", "learning", "understanding"},

	// Anger and frustration
	"anger":       {"equanimity", "self-control", "forgiveness"},
	"annoyance":   {"patience", "tolerance", "peace"},
	"disapproval": {"acceptance", "understanding", "compassion"},
	"disgust":     {"purity", "detachment", "equanimity"},

	// Sadness and grief
	"sadness":        {"hope", "resilience", "purpose"},
	"grief":          {"acceptance", "impermanence", "strength"},
	"disappointment": {"detachment", "perseverance", "faith"},
	"remorse":        {"forgiveness", "learning", "growth"},
	"embarrassment":  {"self-acceptance", "humility", "growth"},

	// Joy and positive emotions
	"joy":        {"gratitude", "devotion", "celebration"},
	"gratitude":  {"devotion", "humility", "appreciation"},
	"love":       {"devotion", "compassion", "unity"},
	"admiration": {"respect", "learning", "inspiration"},
	"pride":      {"humility", "service", "dharma"},
	"excitement": {"enthusiasm", "action", "purpose"},
	"amusement":  {"joy", "lightness", "balance"},
	"relief":     {"peace", "surrender", "trust"},
	"optimism":   {"hope", "faith", "perseverance"},
	"caring":     {"compassion", "service", "love"},
	"approval":   {"acceptance", "harmony", "peace"},

	// Ambiguous emotions
	"desire":      {"detachment", "contentment", "wisdom"},
	"realization": {"knowledge", "awakening", "truth"},
	"surprise":    {"acceptance", "adaptability", "learning"},
}

// verseIDToPointID derives a deterministic Qdrant point ID from a verse
// ID. Qdrant requires point IDs to be UUID or uint64, not arbitrary
// strings like "BG2.47".
func verseIDToPointID(verseID string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(verseID)).String()
}
