package repository

import (
	"time"

	"personal-agenda/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Category    model.Category
	UserID      string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID   string
	Category model.Category
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Category    model.Category
}
