package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newHuggingFaceImpl creates a new Hugging Face implementation
func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	return &huggingFaceImpl{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// ZeroShotClassify runs zero-shot classification of the input against candidate labels
func (h *huggingFaceImpl) ZeroShotClassify(ctx context.Context, model, input string, labels []string) (*ZeroShotResult, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("huggingface: candidate labels are required")
	}

	req := zeroShotRequest{
		Inputs:     input,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	}

	var result ZeroShotResult
	if err := h.callAPI(ctx, model, req, &result); err != nil {
		return nil, err
	}

	if len(result.Labels) != len(result.Scores) {
		return nil, fmt.Errorf("huggingface: mismatched labels and scores in response")
	}

	return &result, nil
}

// ClassifyText runs multi-label text classification on the input.
// The Inference API wraps results for a single input in an outer array.
func (h *huggingFaceImpl) ClassifyText(ctx context.Context, model, input string) ([]LabelScore, error) {
	req := textClassificationRequest{Inputs: input}

	var result [][]LabelScore
	if err := h.callAPI(ctx, model, req, &result); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("huggingface: empty classification response")
	}

	return result[0], nil
}

// callAPI posts the request body to the model endpoint and decodes the response into out
func (h *huggingFaceImpl) callAPI(ctx context.Context, model string, reqBody any, out any) error {
	url := fmt.Sprintf("%s/models/%s", h.apiURL, model)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.apiKey))

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("huggingface: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return fmt.Errorf("huggingface: API error %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("huggingface: API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("huggingface: failed to decode response: %w", err)
	}

	return nil
}
