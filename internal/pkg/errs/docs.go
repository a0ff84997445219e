// Package errs provides standardized error types for the mailroom engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// The sentinels form the engine's error taxonomy:
//
//	ErrValueIsRequired / ErrValueIsInvalid / ErrValueIsOutOfRange
//	    invalid input; the caller must fix the request, never retry
//	ErrObjectNotFound
//	    referenced entity absent; terminal for that call
//	ErrResourceConflict
//	    resource not in the required state (e.g. locker already assigned);
//	    the caller may retry after choosing a different resource
//	ErrUnavailable
//	    transient failure of a collaborating system; safe for the caller to
//	    retry with backoff; the engine itself never retries
//	ErrConsistencyFault
//	    an invariant was violated (e.g. a compensating rollback failed);
//	    never silently recovered, always logged at highest severity
package errs
