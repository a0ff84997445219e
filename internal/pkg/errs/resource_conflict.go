package errs

import (
	"fmt"
)

// ErrResourceConflict is the sentinel for resources that exist but are not in
// the state an operation requires.
var ErrResourceConflict = fmt.Errorf("resource conflict")

// ResourceConflictError indicates that a resource is not in the required
// state, e.g. a locker that already carries an active allocation. The caller
// may retry after choosing a different resource.
type ResourceConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewResourceConflictError creates a ResourceConflictError without a cause.
func NewResourceConflictError(paramName string, id any) *ResourceConflictError {
	return &ResourceConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewResourceConflictErrorWithCause creates a ResourceConflictError wrapping
// an underlying cause.
func NewResourceConflictErrorWithCause(paramName string, id any, cause error) *ResourceConflictError {
	return &ResourceConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ResourceConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrResourceConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrResourceConflict, e.ID))
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}
