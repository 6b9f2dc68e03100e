package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"personal-agenda/internal/model"
	"personal-agenda/internal/task"
	repo "personal-agenda/internal/task/repository"
)

// List returns the scope's tasks matching the filters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Category: input.Category,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail retrieves one of the scope's tasks by ID.
// Tasks owned by other users are reported as not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	if uuid.Validate(id) != nil {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update modifies one of the scope's tasks (partial update).
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if uuid.Validate(input.ID) != nil {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		Date:        existing.Date,
		StartTime:   coalesce(input.StartTime, existing.StartTime),
		EndTime:     coalesce(input.EndTime, existing.EndTime),
		Category:    existing.Category,
	}
	if input.Date != nil {
		opt.Date = *input.Date
	}
	if input.Category.Valid() {
		opt.Category = input.Category
	}

	if err := validateTimeRange(opt.StartTime, opt.EndTime); err != nil {
		return task.UpdateOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return task.UpdateOutput{}, task.ErrDuplicateTask
		}
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes one of the scope's tasks by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if uuid.Validate(id) != nil {
		return task.ErrTaskNotFound
	}
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// coalesce returns val when non-empty, otherwise fallback.
func coalesce(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
