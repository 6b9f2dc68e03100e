package qwen_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-agenda/pkg/qwen"
)

func TestNew(t *testing.T) {
	_, err := qwen.New(qwen.Config{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := qwen.New(qwen.Config{APIKey: "key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != qwen.DefaultModel {
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

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "listo"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 8, "completion_tokens": 2, "total_tokens": 10}
		}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		client, _ := qwen.New(qwen.Config{APIKey: "test-key", BaseURL: ts.URL})

		resp, err := client.GenerateContent(context.Background(), &qwen.Request{
			Messages: []qwen.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "listo" {
			t.Errorf("unexpected choices: %+v", resp.Choices)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		client, _ := qwen.New(qwen.Config{APIKey: "wrong", BaseURL: ts.URL})

		_, err := client.GenerateContent(context.Background(), &qwen.Request{
			Messages: []qwen.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Fatalf("expected auth error, got: %v", err)
		}
	})
}
