package usecase

import (
	"testing"
	"time"

	"personal-agenda/internal/extraction"
	"personal-agenda/internal/model"
)

func TestNormalize(t *testing.T) {
	today := time.Date(2025, time.July, 2, 15, 30, 0, 0, time.UTC)

	valid := extraction.ParsedFields{
		Title:    "Ir al médico",
		Date:     "2025-07-05",
		Hour:     "10:00",
		EndHour:  "12:00",
		Category: "Salud",
	}

	tests := []struct {
		name     string
		mutate   func(f *extraction.ParsedFields)
		wantKind extraction.Kind
		check    func(t *testing.T, draft extraction.TaskDraft)
	}{
		{
			name:   "GapKeptWhenAtLeastOneHour",
			mutate: func(f *extraction.ParsedFields) {},
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.EndTime != "12:00" {
					t.Errorf("expected endTime 12:00, got %s", draft.EndTime)
				}
			},
		},
		{
			name:   "ExactlyOneHourKept",
			mutate: func(f *extraction.ParsedFields) { f.EndHour = "11:00" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.EndTime != "11:00" {
					t.Errorf("expected endTime 11:00, got %s", draft.EndTime)
				}
			},
		},
		{
			name:   "ShortGapBumpedToOneHour",
			mutate: func(f *extraction.ParsedFields) { f.EndHour = "10:30" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.EndTime != "11:00" {
					t.Errorf("expected endTime 11:00, got %s", draft.EndTime)
				}
			},
		},
		{
			name:   "NegativeGapBumpedToOneHour",
			mutate: func(f *extraction.ParsedFields) { f.EndHour = "09:00" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.EndTime != "11:00" {
					t.Errorf("expected endTime 11:00, got %s", draft.EndTime)
				}
			},
		},
		{
			name:   "TodayIsAllowed",
			mutate: func(f *extraction.ParsedFields) { f.Date = "2025-07-02" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.Date.Format("2006-01-02") != "2025-07-02" {
					t.Errorf("expected date 2025-07-02, got %s", draft.Date.Format("2006-01-02"))
				}
			},
		},
		{
			name:     "PastDateRejected",
			mutate:   func(f *extraction.ParsedFields) { f.Date = "2025-07-01" },
			wantKind: extraction.KindInvalidDate,
		},
		{
			name:     "MalformedDateRejected",
			mutate:   func(f *extraction.ParsedFields) { f.Date = "el próximo sábado" },
			wantKind: extraction.KindInvalidDate,
		},
		{
			name:     "MalformedHourRejected",
			mutate:   func(f *extraction.ParsedFields) { f.Hour = "10am" },
			wantKind: extraction.KindInvalidDate,
		},
		{
			name:     "MalformedEndHourRejected",
			mutate:   func(f *extraction.ParsedFields) { f.EndHour = "mediodía" },
			wantKind: extraction.KindInvalidDate,
		},
		{
			name:   "SpanishCategoryMapped",
			mutate: func(f *extraction.ParsedFields) { f.Category = "Salud" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.Category != model.CategoryHealth {
					t.Errorf("expected category Health, got %s", draft.Category)
				}
			},
		},
		{
			name:   "UnknownCategoryFallsBackToOther",
			mutate: func(f *extraction.ParsedFields) { f.Category = "Descanso" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.Category != model.CategoryOther {
					t.Errorf("expected category Other, got %s", draft.Category)
				}
			},
		},
		{
			name:   "CategoryCaseInsensitive",
			mutate: func(f *extraction.ParsedFields) { f.Category = "trabajo" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.Category != model.CategoryWork {
					t.Errorf("expected category Work, got %s", draft.Category)
				}
			},
		},
		{
			name:   "DescriptionDefaultsFromTitle",
			mutate: func(f *extraction.ParsedFields) { f.Description = "" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.Description != "Tarea: Ir al médico" {
					t.Errorf("unexpected description: %q", draft.Description)
				}
			},
		},
		{
			name:   "DescriptionKeptWhenPresent",
			mutate: func(f *extraction.ParsedFields) { f.Description = "Llevar los estudios previos" },
			check: func(t *testing.T, draft extraction.TaskDraft) {
				if draft.Description != "Llevar los estudios previos" {
					t.Errorf("unexpected description: %q", draft.Description)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := valid
			tt.mutate(&fields)

			draft, err := normalize(fields, today)

			if tt.wantKind != "" {
				if extraction.KindOf(err) != tt.wantKind {
					t.Fatalf("expected kind %s, got err: %v", tt.wantKind, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.Title != "Ir al médico" {
				t.Errorf("unexpected title: %q", draft.Title)
			}
			tt.check(t, draft)
		})
	}
}

func TestNormalizeMidnightEdge(t *testing.T) {
	today := time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)

	draft, err := normalize(extraction.ParsedFields{
		Title:    "Trasnochar estudiando",
		Date:     "2025-07-02",
		Hour:     "23:30",
		EndHour:  "23:45",
		Category: "Estudio",
	}, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The one-hour bump wraps the clock; the date stays on the same day.
	if draft.EndTime != "00:30" {
		t.Errorf("expected endTime 00:30, got %s", draft.EndTime)
	}
}

func TestNormalizeWesternTimezoneAnchor(t *testing.T) {
	// Morning in Caracas: UTC midnight of the same calendar day is already
	// in the past as an instant, but the date itself is still today.
	caracas := time.FixedZone("VET", -4*60*60)
	today := time.Date(2025, time.July, 2, 9, 0, 0, 0, caracas)

	fields := extraction.ParsedFields{
		Title:    "Ir al médico",
		Hour:     "10:00",
		EndHour:  "11:00",
		Category: "Salud",
	}

	t.Run("TodayAccepted", func(t *testing.T) {
		fields.Date = "2025-07-02"
		draft, err := normalize(fields, today)
		if err != nil {
			t.Fatalf("task for today rejected: %v", err)
		}
		if got := draft.Date.Format("2006-01-02"); got != "2025-07-02" {
			t.Errorf("expected date 2025-07-02, got %s", got)
		}
	})

	t.Run("YesterdayRejected", func(t *testing.T) {
		fields.Date = "2025-07-01"
		_, err := normalize(fields, today)
		if extraction.KindOf(err) != extraction.KindInvalidDate {
			t.Errorf("expected invalid date error, got: %v", err)
		}
	})
}
