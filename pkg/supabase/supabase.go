package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	restPath = "/rest/v1"
)

// Config holds Supabase client configuration
type Config struct {
	URL        string // Project URL (e.g., https://xyz.supabase.co)
	APIKey     string // Anon or service role key
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("supabase: URL is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("supabase: APIKey is required")
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type supabaseImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newSupabaseImpl(cfg Config) *supabaseImpl {
	return &supabaseImpl{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}

// Insert creates rows in a table
func (s *supabaseImpl) Insert(ctx context.Context, table string, record any, out any) error {
	return s.call(ctx, http.MethodPost, table, nil, record, out)
}

// Select reads rows from a table filtered by PostgREST query params
func (s *supabaseImpl) Select(ctx context.Context, table string, query url.Values, out any) error {
	return s.call(ctx, http.MethodGet, table, query, nil, out)
}

// Update patches rows matching the query params
func (s *supabaseImpl) Update(ctx context.Context, table string, query url.Values, patch any, out any) error {
	return s.call(ctx, http.MethodPatch, table, query, patch, out)
}

// Delete removes rows matching the query params
func (s *supabaseImpl) Delete(ctx context.Context, table string, query url.Values) error {
	return s.call(ctx, http.MethodDelete, table, query, nil, nil)
}

func (s *supabaseImpl) call(ctx context.Context, method, table string, query url.Values, body any, out any) error {
	endpoint := fmt.Sprintf("%s%s/%s", s.baseURL, restPath, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("supabase: failed to marshal body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("supabase: failed to create request: %w", err)
	}
	httpReq.Header.Set("apikey", s.apiKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		httpReq.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("supabase: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase: API error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("supabase: failed to decode response: %w", err)
		}
	}

	return nil
}
