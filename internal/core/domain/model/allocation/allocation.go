// Package allocation provides the Allocation record binding a registration
// to a locker while the locker is occupied.
//
// At most one allocation references a given locker while that locker is
// unavailable, and the allocation transaction is the sole authority that
// flips the locker's availability. An allocation is removed either as the
// compensating action of a failed assignment or by explicit unassignment.
package allocation

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/locker"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrAllocationIsNotConstructed indicates that the Allocation was not
// initialized through the NewAllocation or RestoreAllocation constructors.
var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")

// Allocation binds one registration to one locker, with the assignment
// timestamp and the occupancy level reported for the assigned locker.
type Allocation struct {
	// id uniquely identifies the allocation
	id kernel.UUID

	// registrationID is the customer registration holding the locker
	registrationID kernel.UUID

	// lockerID is the assigned locker
	lockerID kernel.UUID

	// assignedAt is when the assignment was made
	assignedAt time.Time

	// occupancy is the reported fill level, Empty at creation
	occupancy locker.OccupancyStatus

	guard guard.ConstructorGuard
}

// NewAllocation creates an allocation at the baseline Empty occupancy with
// the assignment timestamp set to the current UTC time.
func NewAllocation(id, registrationID, lockerID kernel.UUID) (*Allocation, error) {
	a := &Allocation{
		assignedAt: time.Now().UTC(),
		occupancy:  locker.Empty,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setRegistrationID(registrationID),
		a.setLockerID(lockerID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAllocation reconstructs an allocation from persistence.
func RestoreAllocation(
	id, registrationID, lockerID kernel.UUID,
	assignedAt time.Time,
	occupancy locker.OccupancyStatus,
) (*Allocation, error) {
	a := &Allocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setRegistrationID(registrationID),
		a.setLockerID(lockerID),
		a.setAssignedAt(assignedAt),
		a.setOccupancy(occupancy),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// ID returns the unique identifier of the allocation.
func (a *Allocation) ID() kernel.UUID {
	return a.id
}

// RegistrationID returns the registration holding the locker.
func (a *Allocation) RegistrationID() kernel.UUID {
	return a.registrationID
}

// LockerID returns the assigned locker.
func (a *Allocation) LockerID() kernel.UUID {
	return a.lockerID
}

// AssignedAt returns when the assignment was made.
func (a *Allocation) AssignedAt() time.Time {
	return a.assignedAt
}

// Occupancy returns the reported fill level of the assigned locker.
func (a *Allocation) Occupancy() locker.OccupancyStatus {
	return a.occupancy
}

// ReportOccupancy updates the fill level reported for the assigned locker.
func (a *Allocation) ReportOccupancy(occupancy locker.OccupancyStatus) error {
	return a.setOccupancy(occupancy)
}

// IsEqual compares two allocations by identity.
func (a *Allocation) IsEqual(other *Allocation) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// Validate checks that the allocation was built through a constructor.
func (a *Allocation) Validate() error {
	return a.guard.Validate(ErrAllocationIsNotConstructed)
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *Allocation) setRegistrationID(registrationID kernel.UUID) error {
	if err := registrationID.Validate(); err != nil {
		return err
	}

	a.registrationID = registrationID
	return nil
}

func (a *Allocation) setLockerID(lockerID kernel.UUID) error {
	if err := lockerID.Validate(); err != nil {
		return err
	}

	a.lockerID = lockerID
	return nil
}

func (a *Allocation) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt is required")
	}

	a.assignedAt = assignedAt
	return nil
}

func (a *Allocation) setOccupancy(occupancy locker.OccupancyStatus) error {
	if err := occupancy.Validate(); err != nil {
		return err
	}

	a.occupancy = occupancy
	return nil
}
