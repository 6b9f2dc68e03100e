package whatsapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-agenda/pkg/whatsapp"
)

func TestSendText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/555000/messages") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid token", "code": 190}}`))
			return
		}

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)

		if req["messaging_product"] != "whatsapp" {
			t.Errorf("expected messaging_product whatsapp, got %v", req["messaging_product"])
		}

		text := req["text"].(map[string]interface{})
		if text["body"] == "cause_error" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "recipient not in allowed list", "code": 131030}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages": [{"id": "wamid.1"}]}`))
	}))
	defer ts.Close()

	client := whatsapp.NewClient("test-token", "555000")
	client.SetAPIURL(ts.URL)

	t.Run("Success", func(t *testing.T) {
		if err := client.SendText(context.Background(), "5491100000000", "hola"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		err := client.SendText(context.Background(), "5491100000000", "cause_error")
		if err == nil || !strings.Contains(err.Error(), "recipient not in allowed list") {
			t.Fatalf("expected api error, got: %v", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad := whatsapp.NewClient("wrong-token", "555000")
		bad.SetAPIURL(ts.URL)

		err := bad.SendText(context.Background(), "5491100000000", "hola")
		if err == nil || !strings.Contains(err.Error(), "invalid token") {
			t.Fatalf("expected auth error, got: %v", err)
		}
	})
}

func TestWebhookPayloadDecode(t *testing.T) {
	raw := `{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "100",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"contacts": [{"wa_id": "5491100000000", "profile": {"name": "Ana"}}],
					"messages": [{"id": "wamid.2", "from": "5491100000000", "type": "text", "text": {"body": "dentista mañana 10"}}]
				}
			}]
		}]
	}`

	var payload whatsapp.WebhookPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if len(payload.Entry) != 1 || len(payload.Entry[0].Changes) != 1 {
		t.Fatalf("unexpected payload shape: %+v", payload)
	}

	msgs := payload.Entry[0].Changes[0].Value.Messages
	if len(msgs) != 1 || msgs[0].Text == nil || msgs[0].Text.Body != "dentista mañana 10" {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}
