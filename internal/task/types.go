package task

import (
	"time"

	"personal-agenda/internal/model"
)

// Task is a scheduled agenda entry owned by a user. StartTime and EndTime
// are 24-hour HH:MM strings; Date carries the calendar day.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Category    model.Category
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Category    model.Category
}

type ListInput struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Category model.Category
	Limit    int
	Offset   int
}

type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Date        *time.Time
	StartTime   string
	EndTime     string
	Category    model.Category
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task Task
}

type ListOutput struct {
	Tasks  []Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task Task
}

type UpdateOutput struct {
	Task Task
}
