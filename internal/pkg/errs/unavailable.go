package errs

import (
	"fmt"
)

// ErrUnavailable is the sentinel for transient failures of collaborating
// systems (datastore, object storage). Operations failing with this sentinel
// are safe to retry with backoff; the engine never retries on its own.
var ErrUnavailable = fmt.Errorf("collaborator unavailable")

// UnavailableError indicates a transient failure of an external collaborator.
type UnavailableError struct {
	ParamName string
	Cause     error
}

// NewUnavailableError creates an UnavailableError without a cause.
func NewUnavailableError(paramName string) *UnavailableError {
	return &UnavailableError{
		ParamName: paramName,
	}
}

// NewUnavailableErrorWithCause creates an UnavailableError wrapping the
// underlying collaborator failure.
func NewUnavailableErrorWithCause(paramName string, cause error) *UnavailableError {
	return &UnavailableError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnavailable, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnavailable, e.ParamName))
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}
