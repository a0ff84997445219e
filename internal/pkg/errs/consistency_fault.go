package errs

import (
	"fmt"
)

// ErrConsistencyFault is the sentinel for invariant violations: a compensating
// rollback that itself failed, a counter observed below zero, an allocation
// referencing a locker still marked available. Faults of this kind are never
// silently recovered; callers must log them at highest severity and surface
// them distinctly from ordinary errors.
var ErrConsistencyFault = fmt.Errorf("consistency fault")

// ConsistencyFaultError indicates that the system has been left in a state
// that violates one of its invariants.
type ConsistencyFaultError struct {
	ParamName string
	Detail    string
	Cause     error
}

// NewConsistencyFaultError creates a ConsistencyFaultError without a cause.
func NewConsistencyFaultError(paramName, detail string) *ConsistencyFaultError {
	return &ConsistencyFaultError{
		ParamName: paramName,
		Detail:    detail,
	}
}

// NewConsistencyFaultErrorWithCause creates a ConsistencyFaultError wrapping
// the failure that produced the inconsistent state.
func NewConsistencyFaultErrorWithCause(paramName, detail string, cause error) *ConsistencyFaultError {
	return &ConsistencyFaultError{
		ParamName: paramName,
		Detail:    detail,
		Cause:     cause,
	}
}

func (e *ConsistencyFaultError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)",
			ErrConsistencyFault, e.ParamName, e.Detail, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrConsistencyFault, e.ParamName, e.Detail))
}

func (e *ConsistencyFaultError) Unwrap() error {
	return ErrConsistencyFault
}
