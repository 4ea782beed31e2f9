package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gitagpt/pkg/supabase"
)

type sessionRow struct {
	ID              string `json:"id"`
	InteractionMode string `json:"interaction_mode"`
	MessageCount    int    `json:"message_count"`
}

func TestSupabaseClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-anon-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/rest/v1/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodPost:
			if r.Header.Get("Prefer") != "return=representation" {
				w.WriteHeader(http.StatusCreated)
				return
			}
			var row sessionRow
			json.NewDecoder(r.Body).Decode(&row)
			if row.InteractionMode == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id": "abc-123", "interaction_mode": "wisdom", "message_count": 0}]`))

		case http.MethodGet:
			if r.URL.Query().Get("id") == "eq.missing" {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`[]`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[{"id": "abc-123", "interaction_mode": "wisdom", "message_count": 4}]`))

		case http.MethodPatch:
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[{"id": "abc-123", "interaction_mode": "wisdom", "message_count": 5}]`))

		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer ts.Close()

	client, err := supabase.New(supabase.Config{URL: ts.URL, APIKey: "test-anon-key"})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Insert Returning", func(t *testing.T) {
		var rows []sessionRow
		err := client.Insert(context.Background(), "conversation_sessions",
			sessionRow{InteractionMode: "wisdom"}, &rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].ID != "abc-123" {
			t.Errorf("unexpected inserted rows: %v", rows)
		}
	})

	t.Run("Insert Fire And Forget", func(t *testing.T) {
		err := client.Insert(context.Background(), "conversation_messages",
			map[string]any{"role": "user", "content": "hello"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Insert Server Error", func(t *testing.T) {
		var rows []sessionRow
		err := client.Insert(context.Background(), "conversation_sessions",
			sessionRow{InteractionMode: "cause_500"}, &rows)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Select With Filter", func(t *testing.T) {
		query := url.Values{}
		query.Set("id", "eq.abc-123")
		query.Set("select", "*")

		var rows []sessionRow
		err := client.Select(context.Background(), "conversation_sessions", query, &rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].MessageCount != 4 {
			t.Errorf("unexpected rows: %v", rows)
		}
	})

	t.Run("Select Empty Result", func(t *testing.T) {
		query := url.Values{}
		query.Set("id", "eq.missing")

		var rows []sessionRow
		err := client.Select(context.Background(), "conversation_sessions", query, &rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %v", rows)
		}
	})

	t.Run("Update", func(t *testing.T) {
		query := url.Values{}
		query.Set("id", "eq.abc-123")

		var rows []sessionRow
		err := client.Update(context.Background(), "conversation_sessions", query,
			map[string]any{"message_count": 5}, &rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].MessageCount != 5 {
			t.Errorf("unexpected updated rows: %v", rows)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		query := url.Values{}
		query.Set("id", "eq.abc-123")

		if err := client.Delete(context.Background(), "conversation_sessions", query); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		badClient, _ := supabase.New(supabase.Config{URL: ts.URL, APIKey: "bad-key"})
		var rows []sessionRow
		err := badClient.Select(context.Background(), "conversation_sessions", nil, &rows)
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Missing Config", func(t *testing.T) {
		if _, err := supabase.New(supabase.Config{APIKey: "k"}); err == nil {
			t.Errorf("expected error for missing URL")
		}
		if _, err := supabase.New(supabase.Config{URL: "http://x"}); err == nil {
			t.Errorf("expected error for missing APIKey")
		}
	})
}
