package lexilla

import (
	"fmt"
	"strconv"
)

// ValidationReason identifies why a corpus case is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrUnknownStyle      ValidationReason = "unknown_style"
	ErrEmptyValue        ValidationReason = "empty_value"
	ErrInvalidValueStart ValidationReason = "invalid_value_start"
)

// ValidationError describes a single validation failure in a corpus case.
type ValidationError struct {
	Case    int              // Index of the case containing the error, -1 outside a corpus
	Field   string           // The problematic field ("name", "text", "want", "value_start")
	Value   string           // The offending value
	Reason  ValidationReason // Why this field is invalid
	TextLen int              // Length of the case text (for invalid_value_start errors)
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	field := e.Field
	if e.Case >= 0 {
		field = fmt.Sprintf("case %d: %s", e.Case, e.Field)
	}
	switch e.Reason {
	case ErrUnknownStyle:
		return fmt.Sprintf("%s: unknown style name %q", field, e.Value)
	case ErrEmptyValue:
		return fmt.Sprintf("%s: value must not be empty", field)
	case ErrInvalidValueStart:
		return fmt.Sprintf("%s: %s is out of bounds (valid: -1 or 0-%d)", field, e.Value, e.TextLen)
	default:
		return fmt.Sprintf("%s: invalid value %q", field, e.Value)
	}
}

// ValidateCases checks that every case in a corpus names a known style and
// carries a value split consistent with its text. Returns a slice of
// validation errors, or nil if the corpus is valid.
func ValidateCases(cases []Case) []ValidationError {
	var errors []ValidationError

	for i, c := range cases {
		if c.Name == "" {
			errors = append(errors, ValidationError{
				Case:   i,
				Field:  "name",
				Reason: ErrEmptyValue,
			})
		}
		if c.Text == "" {
			errors = append(errors, ValidationError{
				Case:   i,
				Field:  "text",
				Reason: ErrEmptyValue,
			})
		}
		if _, err := ParseStyle(c.Want); err != nil {
			errors = append(errors, ValidationError{
				Case:   i,
				Field:  "want",
				Value:  c.Want,
				Reason: ErrUnknownStyle,
			})
		}
		if c.ValueStart < -1 || c.ValueStart > len(c.Text) {
			errors = append(errors, ValidationError{
				Case:    i,
				Field:   "value_start",
				Value:   strconv.Itoa(c.ValueStart),
				Reason:  ErrInvalidValueStart,
				TextLen: len(c.Text),
			})
		}
	}

	return errors
}
