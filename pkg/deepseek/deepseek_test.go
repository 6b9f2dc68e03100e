package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-agenda/pkg/deepseek"
)

func TestNew(t *testing.T) {
	_, err := deepseek.New(deepseek.Config{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := deepseek.New(deepseek.Config{APIKey: "key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != deepseek.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
			return
		}

		var req deepseek.Request
		json.NewDecoder(r.Body).Decode(&req)

		if len(req.Messages) > 0 && req.Messages[0].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"message": "server exploded"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hola"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 2, "total_tokens": 12}
		}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL})

		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "hola" {
			t.Errorf("unexpected choices: %+v", resp.Choices)
		}
		if resp.Usage.TotalTokens != 12 {
			t.Errorf("expected 12 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("API Error Surfaces Message", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL})

		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil || !strings.Contains(err.Error(), "server exploded") {
			t.Fatalf("expected provider error message, got: %v", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})

		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Fatalf("expected auth error, got: %v", err)
		}
	})
}
