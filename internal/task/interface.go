package task

import (
	"context"

	"personal-agenda/internal/extraction"
	"personal-agenda/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// CreateFromDraft persists a task draft produced by the extraction
	// pipeline on behalf of the given scope.
	CreateFromDraft(ctx context.Context, sc model.Scope, draft extraction.TaskDraft) (Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
