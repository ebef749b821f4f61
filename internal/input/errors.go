package input

import (
	"errors"
	"fmt"
)

// UsageError reports a command line that cannot start a session, such as a
// missing or duplicated input source.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a UsageError with a formatted message
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// IsUsageError checks if an error is a UsageError
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
