package emotion

import (
	"context"

	"gitagpt/internal/model"
	"gitagpt/pkg/huggingface"
	"gitagpt/pkg/log"
)

// Detector is the interface for emotion detection
type Detector interface {
	Detect(ctx context.Context, text string) ([]model.Emotion, error)
}

// Config holds tunables for the emotion detector
type Config struct {
	Model     string  // Text classification model name
	Threshold float64 // Minimum confidence to keep an emotion
}

// HFDetector detects emotions via the Hugging Face Inference API
type HFDetector struct {
	hf        huggingface.IHuggingFace
	model     string
	threshold float64
	l         log.Logger
}

// Ensure HFDetector implements Detector interface
var _ Detector = (*HFDetector)(nil)

// New creates a new HFDetector
func New(hf huggingface.IHuggingFace, cfg Config, l log.Logger) *HFDetector {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &HFDetector{
		hf:        hf,
		model:     cfg.Model,
		threshold: cfg.Threshold,
		l:         l,
	}
}
