package huggingface

import (
	"fmt"
	"net/http"
)

// Config holds Hugging Face client configuration
type Config struct {
	APIKey     string
	APIURL     string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("huggingface: APIKey is required")
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type huggingFaceImpl struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// ZeroShotResult holds the ranked labels from zero-shot classification.
// Labels and Scores are parallel slices sorted by descending score.
type ZeroShotResult struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// LabelScore is a single label with its confidence from text classification.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// zeroShotRequest is the wire format for zero-shot classification.
type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// textClassificationRequest is the wire format for text classification.
type textClassificationRequest struct {
	Inputs string `json:"inputs"`
}

// apiError is the error body returned by the Inference API.
type apiError struct {
	Error string `json:"error"`
}
