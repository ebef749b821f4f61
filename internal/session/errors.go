package session

import (
	"errors"
	"fmt"
)

// InvariantError reports an operation invoked in a state that does not allow
// it. This is a host programming error, not a user mistake.
type InvariantError struct {
	Op     string
	State  State
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invariant violation: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("invariant violation: %s is not valid while %s", e.Op, e.State)
}

// IsInvariantViolation checks if an error is an InvariantError
func IsInvariantViolation(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
