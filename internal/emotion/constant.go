package emotion

// Log prefixes
const (
	LogPrefixDetect = "internal.emotion.Detect"
)

// Detector configuration
const (
	// DefaultModel is the GoEmotions classification model
	DefaultModel = "SamLowe/roberta-base-go_emotions"

	// DefaultThreshold filters out low-confidence emotion scores
	DefaultThreshold = 0.3

	// NeutralConfidence is assigned when nothing clears the threshold
	NeutralConfidence = 0.5
)

// displayHint carries client-side presentation for an emotion label
type displayHint struct {
	Emoji string
	Color string
}

var neutralHint = displayHint{Emoji: "😐", Color: "#F3F4F6"}

// displayHints covers all 28 GoEmotions labels
var displayHints = map[string]displayHint{
	// Positive
	"joy":        {Emoji: "😊", Color: "#FEF3C7"},
	"admiration": {Emoji: "🤩", Color: "#FEF3C7"},
	"approval":   {Emoji: "👍", Color: "#D1FAE5"},
	"gratitude":  {Emoji: "🙏", Color: "#FEF3C7"},
	"love":       {Emoji: "❤️", Color: "#FECACA"},
	"optimism":   {Emoji: "😊", Color: "#D1FAE5"},
	"caring":     {Emoji: "🤗", Color: "#D1FAE5"},
	"excitement": {Emoji: "🎉", Color: "#FEF3C7"},
	"amusement":  {Emoji: "😄", Color: "#FEF3C7"},
	"pride":      {Emoji: "😌", Color: "#FEF3C7"},
	"relief":     {Emoji: "😌", Color: "#D1FAE5"},

	// Ambiguous
	"desire":      {Emoji: "🤔", Color: "#E0E7FF"},
	"realization": {Emoji: "💡", Color: "#FEF3C7"},
	"curiosity":   {Emoji: "🤔", Color: "#E0E7FF"},
	"neutral":     {Emoji: "😐", Color: "#F3F4F6"},

	// Sadness
	"sadness":        {Emoji: "😢", Color: "#DBEAFE"},
	"disappointment": {Emoji: "😞", Color: "#DBEAFE"},
	"grief":          {Emoji: "😭", Color: "#DBEAFE"},
	"remorse":        {Emoji: "😔", Color: "#DBEAFE"},
	"embarrassment":  {Emoji: "😳", Color: "#FEE2E2"},

	// Anger
	"anger":       {Emoji: "😠", Color: "#FEE2E2"},
	"annoyance":   {Emoji: "😒", Color: "#FEE2E2"},
	"disapproval": {Emoji: "👎", Color: "#FEE2E2"},
	"disgust":     {Emoji: "🤢", Color: "#FEE2E2"},

	// Fear
	"fear":        {Emoji: "😰", Color: "#EDE9FE"},
	"nervousness": {Emoji: "😰", Color: "#E0E7FF"},

	// Other
	"confusion": {Emoji: "😕", Color: "#F3F4F6"},
	"surprise":  {Emoji: "😲", Color: "#E0E7FF"},
}
