package usecase

import (
	"context"

	"personal-agenda/internal/extraction"
	"personal-agenda/pkg/llmprovider"
)

const (
	// Low temperature for deterministic JSON output.
	promptTemperature = 0.2
	promptMaxTokens   = 512
)

// Extract runs the full pipeline: prompt → completion → parse → normalize.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.TaskDraft, error) {
	prompt := buildTaskPrompt(input.Phrase, input.Today)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: promptTemperature,
		MaxTokens:   promptMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "extraction: completion failed: %v", err)
		return extraction.TaskDraft{}, &extraction.Error{
			Kind:    extraction.KindProvider,
			Message: "completion request failed",
			Err:     err,
		}
	}

	uc.l.Debugf(ctx, "extraction: raw completion from %s: %s", resp.ProviderName, resp.Text)

	fields, err := parseResponse(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "extraction: %v", err)
		return extraction.TaskDraft{}, err
	}

	draft, err := normalize(fields, input.Today)
	if err != nil {
		uc.l.Warnf(ctx, "extraction: %v", err)
		return extraction.TaskDraft{}, err
	}

	return draft, nil
}
