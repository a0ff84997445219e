package parcel

import (
	"fmt"

	"mailroom/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
//
// State transitions:
//
//	Arrived ──> ReleaseRequested ──> Released
//	    │               │
//	    └───────────────┴──────────> Disposed
//
// Release is deliberately loose: by default any package may be force-moved to
// Released so that admins can correct mishandled items; strict precondition
// checking is a configurable policy at the operation layer, not a rule of the
// state machine.
//
// Archival is not a Status member. An archived package keeps its lifecycle
// state and carries a soft-delete timestamp alongside it, so archive/restore
// round trips leave the state machine untouched.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Arrived is the initial status set when a package is received.
	Arrived

	// ReleaseRequested indicates the customer asked for the package to be
	// handed over or forwarded.
	ReleaseRequested

	// Released indicates the package left the mailroom, with proof of
	// release stored.
	Released

	// Disposed indicates the package was destroyed or discarded.
	Disposed
)

// getStatusStrings returns a map of Status values to their string
// representations, including the invalid zero value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:    "Unknown",
		Arrived:          "Arrived",
		ReleaseRequested: "Release Requested",
		Released:         "Released",
		Disposed:         "Disposed",
	}
}

// getValidStatusStrings returns only the valid Status values, supporting
// validation of statuses read back from external sources.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Arrived:          "Arrived",
		ReleaseRequested: "Release Requested",
		Released:         "Released",
		Disposed:         "Disposed",
	}
}

// Validate checks that the status is a valid lifecycle state.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable status name. Invalid values render as
// "Unknown". Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateRelease checks whether a release is allowed from this status under
// the strict precondition policy: only Arrived and ReleaseRequested packages
// may be released.
func (s Status) ValidateRelease() error {
	if s != Arrived && s != ReleaseRequested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}
	return nil
}

// RequestRelease transitions the status to ReleaseRequested.
//
// Valid transitions:
//   - Arrived -> ReleaseRequested
//   - ReleaseRequested -> ReleaseRequested (repeated request is a no-op)
func (s Status) RequestRelease() (Status, error) {
	if s != Arrived && s != ReleaseRequested {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to request release", s.String()),
		)
	}

	return ReleaseRequested, nil
}
