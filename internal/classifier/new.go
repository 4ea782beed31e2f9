package classifier

import (
	"context"

	"gitagpt/internal/model"
	"gitagpt/pkg/huggingface"
	"gitagpt/pkg/log"
)

// Classifier is the interface for intent classification
type Classifier interface {
	Classify(ctx context.Context, text string) model.Classification
}

// Config holds tunables for the intent classifier
type Config struct {
	Model               string  // Zero-shot model name
	ConfidenceThreshold float64 // Minimum score to accept a model result
}

// IntentClassifier routes free text to an intent via a three-tier cascade:
// rule-based patterns, zero-shot model, keyword heuristic.
type IntentClassifier struct {
	hf        huggingface.IHuggingFace
	model     string
	threshold float64
	l         log.Logger
}

// Ensure IntentClassifier implements Classifier interface
var _ Classifier = (*IntentClassifier)(nil)

// New creates a new IntentClassifier
func New(hf huggingface.IHuggingFace, cfg Config, l log.Logger) *IntentClassifier {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	return &IntentClassifier{
		hf:        hf,
		model:     cfg.Model,
		threshold: cfg.ConfidenceThreshold,
		l:         l,
	}
}
