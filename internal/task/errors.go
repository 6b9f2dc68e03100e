package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrDuplicateTask    = errors.New("task already exists at that date and time")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
