package extraction

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of the extraction pipeline failed.
type Kind string

const (
	// KindProvider covers transport failures, non-2xx provider replies and
	// empty completion lists. Transient; safe to retry.
	KindProvider Kind = "provider_error"
	// KindUnparsable means no JSON object could be located in the completion.
	KindUnparsable Kind = "unparsable_response"
	// KindMissingField means the JSON decoded but a required key was absent
	// or empty.
	KindMissingField Kind = "missing_field"
	// KindInvalidDate covers malformed date/time values and backdated tasks.
	KindInvalidDate Kind = "invalid_date"
)

// Error is the discriminated failure type returned by Extract. Every
// failure carries a Kind so callers can pick a user-facing message without
// string matching.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("extraction: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or "" when err is not an extraction error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
