package extraction

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract turns a free-text phrase into a normalized TaskDraft.
	// On failure it returns a *Error carrying the failed stage's Kind.
	Extract(ctx context.Context, input ExtractInput) (TaskDraft, error)
}
