package model

import "strings"

// Category classifies a task. The set is closed: anything that does not
// map to a known category becomes CategoryOther.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryStudy    Category = "Study"
	CategoryHome     Category = "Home"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
)

// categoryAliases maps lowercased labels, Spanish and English, to categories.
var categoryAliases = map[string]Category{
	"personal":  CategoryPersonal,
	"work":      CategoryWork,
	"trabajo":   CategoryWork,
	"study":     CategoryStudy,
	"estudio":   CategoryStudy,
	"estudios":  CategoryStudy,
	"home":      CategoryHome,
	"hogar":     CategoryHome,
	"casa":      CategoryHome,
	"health":    CategoryHealth,
	"salud":     CategoryHealth,
	"other":     CategoryOther,
	"otro":      CategoryOther,
	"otros":     CategoryOther,
}

// ParseCategory maps a free-form label to a Category.
// Unknown labels fall back to CategoryOther.
func ParseCategory(label string) Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return c
	}
	return CategoryOther
}

// SpanishLabel returns the label shown to Spanish-speaking users.
func (c Category) SpanishLabel() string {
	switch c {
	case CategoryPersonal:
		return "Personal"
	case CategoryWork:
		return "Trabajo"
	case CategoryStudy:
		return "Estudio"
	case CategoryHome:
		return "Hogar"
	case CategoryHealth:
		return "Salud"
	default:
		return "Otro"
	}
}

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryStudy, CategoryHome, CategoryHealth, CategoryOther:
		return true
	}
	return false
}
