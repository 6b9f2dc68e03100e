package usecase

import (
	"strings"
	"testing"
	"time"
)

func TestBuildTaskPrompt(t *testing.T) {
	today := time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC) // Wednesday
	prompt := buildTaskPrompt("ir al médico el sábado a las 10", today)

	wantFragments := []string{
		"2025-07-02",                     // anchor date
		"\"mañana\" es 2025-07-03",       // tomorrow resolved
		"\"pasado mañana\" es 2025-07-04",
		"el próximo sábado es 2025-07-05",
		"el próximo miércoles es 2025-07-09", // same weekday → next week
		`"title"`,
		`"date"`,
		`"hour"`,
		`"endHour"`,
		`"category"`,
		"Personal, Trabajo, Estudio, Hogar, Salud, Otro",
		"ir al médico el sábado a las 10",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(prompt, frag) {
			t.Errorf("expected prompt to contain %q", frag)
		}
	}

	// Instructional placeholders must never appear in example output: the
	// model copies them verbatim into the date field.
	if strings.Contains(prompt, "[") {
		t.Error("prompt contains bracketed placeholder text")
	}
}

func TestBuildTaskPromptDeterministic(t *testing.T) {
	today := time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC)

	a := buildTaskPrompt("comprar entradas", today)
	b := buildTaskPrompt("comprar entradas", today)
	if a != b {
		t.Error("expected identical prompts for identical inputs")
	}
}
