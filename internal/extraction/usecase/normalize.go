package usecase

import (
	"fmt"
	"strings"
	"time"

	"personal-agenda/internal/extraction"
	"personal-agenda/internal/model"
	"personal-agenda/pkg/datemath"
	"personal-agenda/pkg/response"
)

// minTaskSpan is the minimum duration every task must cover.
const minTaskSpan = time.Hour

// normalize applies the business rules to parsed fields and composes the
// final TaskDraft. today must be the same anchor date the prompt was built
// with.
func normalize(fields extraction.ParsedFields, today time.Time) (extraction.TaskDraft, error) {
	// Parse in the anchor's location so the comparison against today's
	// start-of-day is between same-zone instants.
	date, err := time.ParseInLocation(response.DateFormat, strings.TrimSpace(fields.Date), today.Location())
	if err != nil {
		return extraction.TaskDraft{}, &extraction.Error{
			Kind:    extraction.KindInvalidDate,
			Message: fmt.Sprintf("date %q is not YYYY-MM-DD", fields.Date),
			Err:     err,
		}
	}
	if date.Before(datemath.StartOfDay(today)) {
		return extraction.TaskDraft{}, &extraction.Error{
			Kind:    extraction.KindInvalidDate,
			Message: fmt.Sprintf("date %s is before today %s", date.Format(response.DateFormat), today.Format(response.DateFormat)),
		}
	}

	start, err := time.Parse(response.TimeFormat, strings.TrimSpace(fields.Hour))
	if err != nil {
		return extraction.TaskDraft{}, &extraction.Error{
			Kind:    extraction.KindInvalidDate,
			Message: fmt.Sprintf("hour %q is not HH:MM", fields.Hour),
			Err:     err,
		}
	}
	end, err := time.Parse(response.TimeFormat, strings.TrimSpace(fields.EndHour))
	if err != nil {
		return extraction.TaskDraft{}, &extraction.Error{
			Kind:    extraction.KindInvalidDate,
			Message: fmt.Sprintf("endHour %q is not HH:MM", fields.EndHour),
			Err:     err,
		}
	}

	// Same-day arithmetic only: an end before the start is treated as a
	// too-small gap, not as crossing midnight.
	if end.Sub(start) < minTaskSpan {
		end = start.Add(minTaskSpan)
	}

	title := strings.TrimSpace(fields.Title)
	description := strings.TrimSpace(fields.Description)
	if description == "" {
		description = fmt.Sprintf("Tarea: %s", title)
	}

	return extraction.TaskDraft{
		Title:       title,
		Description: description,
		Date:        date,
		StartTime:   start.Format(response.TimeFormat),
		EndTime:     end.Format(response.TimeFormat),
		Category:    model.ParseCategory(fields.Category),
	}, nil
}
