package extraction

import (
	"time"

	"personal-agenda/internal/model"
)

// ExtractInput is a single extraction request. Today is the anchor date
// relative expressions in the phrase are resolved against; callers supply
// it explicitly so extraction stays deterministic.
type ExtractInput struct {
	Phrase string
	Today  time.Time
}

// ParsedFields is the raw five-field object decoded from the model reply,
// before any business rule is applied.
type ParsedFields struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Hour        string `json:"hour"`
	EndHour     string `json:"endHour"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// TaskDraft is a normalized task ready for persistence. Date carries the
// calendar day at midnight; StartTime and EndTime are 24-hour HH:MM.
type TaskDraft struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Category    model.Category
}
