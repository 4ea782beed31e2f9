package huggingface

import "context"

// IHuggingFace defines the interface for the Hugging Face Inference API client.
// Implementations are safe for concurrent use.
type IHuggingFace interface {
	// ZeroShotClassify runs zero-shot classification of the input against candidate labels
	ZeroShotClassify(ctx context.Context, model, input string, labels []string) (*ZeroShotResult, error)

	// ClassifyText runs multi-label text classification on the input
	ClassifyText(ctx context.Context, model, input string) ([]LabelScore, error)
}

// New creates a new Hugging Face client with the given configuration
func New(cfg Config) (IHuggingFace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHuggingFaceImpl(cfg), nil
}
