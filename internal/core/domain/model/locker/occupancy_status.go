package locker

import (
	"fmt"

	"mailroom/internal/pkg/errs"
)

// OccupancyStatus is the display fill level of a locker once it has been
// assigned to a registration. It is independent of the availability flag:
// availability says whether an allocation exists, occupancy says how full the
// compartment looks to mailroom staff.
//
// OccupancyStatus carries no transition rules; staff set it freely while the
// locker is assigned.
type OccupancyStatus int

const (
	// UnknownOccupancy represents an invalid or undefined status.
	// This value (0) helps catch uninitialized OccupancyStatus values.
	UnknownOccupancy OccupancyStatus = iota

	// Empty is the baseline level set when a locker is first assigned.
	Empty

	// Normal indicates the locker holds packages with room to spare.
	Normal

	// NearFull indicates the locker is close to capacity.
	NearFull

	// Full indicates the locker cannot take further packages.
	Full
)

// getOccupancyStrings returns a map of OccupancyStatus values to their
// display representations, including the invalid zero value.
func getOccupancyStrings() map[OccupancyStatus]string {
	return map[OccupancyStatus]string{
		UnknownOccupancy: "Unknown",
		Empty:            "Empty",
		Normal:           "Normal",
		NearFull:         "Near Full",
		Full:             "Full",
	}
}

// getValidOccupancyStrings returns only the valid OccupancyStatus values,
// supporting validation of statuses read back from external sources.
func getValidOccupancyStrings() map[OccupancyStatus]string {
	//nolint:exhaustive // UnknownOccupancy is intentionally excluded as it's invalid
	return map[OccupancyStatus]string{
		Empty:    "Empty",
		Normal:   "Normal",
		NearFull: "Near Full",
		Full:     "Full",
	}
}

// Validate checks that the status is one of the four valid fill levels.
// UnknownOccupancy (0) and any other values are invalid.
func (s OccupancyStatus) Validate() error {
	if _, ok := getValidOccupancyStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"occupancy status is invalid",
			fmt.Errorf("%d is not a valid occupancy status", s),
		)
	}
	return nil
}

// String returns the display name of the status: "Empty", "Normal",
// "Near Full", or "Full". Invalid values render as "Unknown". Implements
// fmt.Stringer and is safe to call on any value.
func (s OccupancyStatus) String() string {
	if str, ok := getOccupancyStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// OccupancyStatusFromString maps a display name back to its status value,
// used when parsing admin input.
func OccupancyStatusFromString(s string) (OccupancyStatus, error) {
	for status, str := range getValidOccupancyStrings() {
		if str == s {
			return status, nil
		}
	}

	return UnknownOccupancy, errs.NewValueIsInvalidErrorWithCause(
		"occupancy status is invalid",
		fmt.Errorf("%q is not a valid occupancy status", s),
	)
}
