package datemath_test

import (
	"errors"
	"testing"
	"time"

	"personal-agenda/pkg/datemath"
)

// 2025-07-02 is a Wednesday.
var anchorWednesday = time.Date(2025, 7, 2, 15, 30, 0, 0, time.UTC)

func TestNextWeekday(t *testing.T) {
	tests := []struct {
		name    string
		weekday string
		want    time.Time
		wantErr bool
	}{
		{
			name:    "Saturday in Spanish with accent",
			weekday: "sábado",
			want:    time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Saturday in Spanish without accent",
			weekday: "sabado",
			want:    time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Case insensitive",
			weekday: "VIERNES",
			want:    time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Same weekday rolls a full week",
			weekday: "miércoles",
			want:    time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "English name accepted",
			weekday: "monday",
			want:    time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Unknown name",
			weekday: "funday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.NextWeekday(tt.weekday, anchorWednesday)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NextWeekday() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnknownWeekday) {
					t.Errorf("expected ErrUnknownWeekday, got %v", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextWeekday() got = %v, want %v", got, tt.want)
			}
		})
	}
}

// Every recognized Spanish weekday resolves to a strict future date within
// seven days whose weekday matches the request.
func TestNextWeekdayProperties(t *testing.T) {
	names := map[string]time.Weekday{
		"lunes":     time.Monday,
		"martes":    time.Tuesday,
		"miércoles": time.Wednesday,
		"jueves":    time.Thursday,
		"viernes":   time.Friday,
		"sábado":    time.Saturday,
		"domingo":   time.Sunday,
	}

	today := datemath.StartOfDay(anchorWednesday)
	for name, wd := range names {
		got, err := datemath.NextWeekday(name, anchorWednesday)
		if err != nil {
			t.Fatalf("NextWeekday(%q) unexpected error: %v", name, err)
		}
		if !got.After(today) {
			t.Errorf("NextWeekday(%q) = %v, not strictly after today", name, got)
		}
		if got.Sub(today) > 7*24*time.Hour {
			t.Errorf("NextWeekday(%q) = %v, more than 7 days out", name, got)
		}
		if got.Weekday() != wd {
			t.Errorf("NextWeekday(%q) landed on %v, want %v", name, got.Weekday(), wd)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantOK   bool
	}{
		{
			name:     "Hoy",
			relative: "hoy",
			want:     time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "Mañana",
			relative: "mañana",
			want:     time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "Pasado mañana",
			relative: "pasado mañana",
			want:     time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "Próximo sábado",
			relative: "próximo sábado",
			want:     time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "El domingo",
			relative: "el domingo",
			want:     time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "Bare weekday",
			relative: "jueves",
			want:     time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "Unrecognized",
			relative: "algún día",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datemath.Resolve(tt.relative, anchorWednesday)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Resolve() got = %v, want %v", got, tt.want)
			}
		})
	}
}
