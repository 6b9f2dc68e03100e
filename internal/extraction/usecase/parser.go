package usecase

import (
	"encoding/json"
	"strings"

	"personal-agenda/internal/extraction"
)

// parseResponse locates the JSON object inside a raw completion and decodes
// it. Models often wrap JSON in markdown fences or prose, so it scans from
// the first '{' to the last '}' rather than requiring clean output.
func parseResponse(raw string) (extraction.ParsedFields, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return extraction.ParsedFields{}, &extraction.Error{
			Kind:    extraction.KindUnparsable,
			Message: "no JSON object found in completion",
		}
	}

	var fields extraction.ParsedFields
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return extraction.ParsedFields{}, &extraction.Error{
			Kind:    extraction.KindUnparsable,
			Message: "completion is not valid JSON",
			Err:     err,
		}
	}

	if missing := missingFields(fields); len(missing) > 0 {
		return extraction.ParsedFields{}, &extraction.Error{
			Kind:    extraction.KindMissingField,
			Message: "missing required field(s): " + strings.Join(missing, ", "),
		}
	}

	return fields, nil
}

// missingFields returns the names of required keys that are absent or empty.
func missingFields(fields extraction.ParsedFields) []string {
	var missing []string
	if strings.TrimSpace(fields.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(fields.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(fields.Hour) == "" {
		missing = append(missing, "hour")
	}
	if strings.TrimSpace(fields.EndHour) == "" {
		missing = append(missing, "endHour")
	}
	if strings.TrimSpace(fields.Category) == "" {
		missing = append(missing, "category")
	}
	return missing
}
