package usecase

import (
	"context"
	"errors"
	"time"

	"personal-agenda/internal/extraction"
	"personal-agenda/internal/model"
	"personal-agenda/internal/task"
	repo "personal-agenda/internal/task/repository"
	"personal-agenda/pkg/response"
)

// Create persists a new task for the scope's user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return task.CreateOutput{}, err
	}

	category := input.Category
	if !category.Valid() {
		category = model.CategoryOther
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    category,
		UserID:      sc.UserID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return task.CreateOutput{}, task.ErrDuplicateTask
		}
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t}, nil
}

// CreateFromDraft persists an extraction draft. The draft is already
// normalized, so no time-range validation is repeated here.
func (uc *implUseCase) CreateFromDraft(ctx context.Context, sc model.Scope, draft extraction.TaskDraft) (task.Task, error) {
	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Category:    draft.Category,
		UserID:      sc.UserID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return task.Task{}, task.ErrDuplicateTask
		}
		uc.l.Errorf(ctx, "uc.CreateFromDraft CreateTask: %v", err)
		return task.Task{}, err
	}
	return t, nil
}

// validateTimeRange checks both times are HH:MM and end is after start.
func validateTimeRange(start, end string) error {
	s, err := time.Parse(response.TimeFormat, start)
	if err != nil {
		return task.ErrInvalidTimeRange
	}
	e, err := time.Parse(response.TimeFormat, end)
	if err != nil {
		return task.ErrInvalidTimeRange
	}
	if !e.After(s) {
		return task.ErrInvalidTimeRange
	}
	return nil
}
