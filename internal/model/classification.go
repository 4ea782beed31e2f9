package model

// Intent is the conversational intent of a user message.
type Intent string

const (
	IntentCasualChat        Intent = "casual_chat"
	IntentEmotionalQuery    Intent = "emotional_query"
	IntentSpiritualGuidance Intent = "spiritual_guidance"
)

// ClassificationMethod identifies which classifier tier produced a result.
type ClassificationMethod string

const (
	MethodRuleBased        ClassificationMethod = "rule_based"
	MethodModelBased       ClassificationMethod = "model_based"
	MethodKeywordHeuristic ClassificationMethod = "keyword_heuristic"
)

// Classification is the outcome of intent classification.
type Classification struct {
	Intent     Intent               `json:"intent"`
	Confidence float64              `json:"confidence"`
	Method     ClassificationMethod `json:"method"`
}
