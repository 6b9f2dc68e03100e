package whatsapp

import (
	"encoding/json"
	"fmt"
)

// ParseWebhookPayload decodes a raw webhook delivery body.
func ParseWebhookPayload(body []byte) (*WebhookPayload, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	return &payload, nil
}

// TextMessages flattens the delivery envelope into the inbound text
// messages it carries, skipping media and status updates.
func (p *WebhookPayload) TextMessages() []Message {
	var out []Message
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}
			for _, msg := range change.Value.Messages {
				if msg.Type != "text" || msg.Text == nil || msg.Text.Body == "" {
					continue
				}
				out = append(out, msg)
			}
		}
	}
	return out
}
