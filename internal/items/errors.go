package items

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of an item error
type ErrorType int

const (
	// ErrTypeMalformedInput indicates the input document does not describe a
	// valid item set. Fatal: no session is started.
	ErrTypeMalformedInput ErrorType = iota
	// ErrTypeValidation indicates an edit was rejected. The item is unchanged
	// and the user may try again.
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeMalformedInput:
		return "Malformed Input"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned when loading or editing items fails.
type Error struct {
	Type     ErrorType // Category of error
	Message  string    // Human-readable error message
	Position int       // Index of the offending entry, -1 if not tied to one
	Name     string    // Name of the offending entry (if known)
	Err      error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	b.WriteString(": ")
	if e.Position >= 0 {
		if e.Name != "" {
			fmt.Fprintf(&b, "item %d (%q): ", e.Position, e.Name)
		} else {
			fmt.Fprintf(&b, "item %d: ", e.Position)
		}
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewMalformedInputError creates an input error not tied to a specific entry
func NewMalformedInputError(message string, err error) *Error {
	return &Error{
		Type:     ErrTypeMalformedInput,
		Message:  message,
		Position: -1,
		Err:      err,
	}
}

// newEntryError creates an input error for the entry at position
func newEntryError(position int, name, message string, err error) *Error {
	return &Error{
		Type:     ErrTypeMalformedInput,
		Message:  message,
		Position: position,
		Name:     name,
		Err:      err,
	}
}

// NewValidationError creates an edit-time validation error
func NewValidationError(message string, err error) *Error {
	return &Error{
		Type:     ErrTypeValidation,
		Message:  message,
		Position: -1,
		Err:      err,
	}
}

// IsMalformedInput checks if an error (or anything it wraps) is a malformed
// input error
func IsMalformedInput(err error) bool {
	var itemErr *Error
	return errors.As(err, &itemErr) && itemErr.Type == ErrTypeMalformedInput
}

// IsValidationError checks if an error (or anything it wraps) is an
// edit-time validation error
func IsValidationError(err error) bool {
	var itemErr *Error
	return errors.As(err, &itemErr) && itemErr.Type == ErrTypeValidation
}

// GetTroubleshootingHint returns user-facing advice for an item error
func GetTroubleshootingHint(err error) []string {
	var itemErr *Error
	if !errors.As(err, &itemErr) {
		return nil
	}

	switch itemErr.Type {
	case ErrTypeMalformedInput:
		return []string{
			`Input must be a JSON array of {"name": ..., "item": {...}} objects`,
			"Each item is tagged with exactly one of Bool, Int, Float, String, Enum",
			"Enum items need a non-empty \"options\" list and an in-range \"value\"",
			"Int/Float \"min\" must not be greater than \"max\"",
			"Run with --example to see a complete sample document",
		}
	case ErrTypeValidation:
		return []string{"Enter a value of the item's type, or press Esc to cancel"}
	default:
		return nil
	}
}
