package locker

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var (
	// ErrLockerIsNotAvailable indicates that the locker already carries an
	// active allocation and cannot be assigned again.
	ErrLockerIsNotAvailable = errors.New("locker is not available")

	// ErrLockerIsNotConstructed indicates that the Locker was not initialized
	// through the NewLocker or RestoreLocker constructors.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")
)

// Locker represents one physical storage compartment at a site. A locker
// belongs to exactly one site for its whole lifetime; there is deliberately
// no way to move it, because the owning site's locker counter is maintained
// incrementally and a silent move would invalidate it.
//
// Key business rules:
//   - isAvailable is false exactly while an active allocation references the
//     locker; the allocation transaction is the sole authority flipping it.
//   - occupancy is a display status used once the locker is assigned; it
//     starts at Empty and is adjusted by staff.
//   - Hard deletion is an admin action handled outside the entity; the
//     capacity ledger decrements the owning site's counter afterwards.
type Locker struct {
	// id uniquely identifies the locker
	id kernel.UUID

	// siteID is the owning site; immutable after construction
	siteID kernel.UUID

	// code is the human-readable label on the physical compartment
	code string

	// isAvailable is false while an active allocation references the locker
	isAvailable bool

	// occupancy is the display fill level used once assigned
	occupancy OccupancyStatus

	guard guard.ConstructorGuard
}

// NewLocker creates a locker at a site. Occupancy starts at Empty; the
// initial availability comes from the admin request so pre-occupied
// compartments can be registered as unavailable.
func NewLocker(id, siteID kernel.UUID, code string, isAvailable bool) (*Locker, error) {
	l := &Locker{
		isAvailable: isAvailable,
		occupancy:   Empty,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(l.setID(id), l.setSiteID(siteID), l.setCode(code)); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocker reconstructs a locker from persistence with its stored
// availability and occupancy.
func RestoreLocker(id, siteID kernel.UUID, code string, isAvailable bool, occupancy OccupancyStatus) (*Locker, error) {
	l := &Locker{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setSiteID(siteID),
		l.setCode(code),
		l.setOccupancy(occupancy),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// ID returns the unique identifier of the locker.
func (l *Locker) ID() kernel.UUID {
	return l.id
}

// SiteID returns the owning site. There is no corresponding setter.
func (l *Locker) SiteID() kernel.UUID {
	return l.siteID
}

// Code returns the human-readable locker label.
func (l *Locker) Code() string {
	return l.code
}

// IsAvailable reports whether the locker can take a new allocation.
func (l *Locker) IsAvailable() bool {
	return l.isAvailable
}

// Occupancy returns the display fill level.
func (l *Locker) Occupancy() OccupancyStatus {
	return l.occupancy
}

// IsEqual compares two lockers by identity.
func (l *Locker) IsEqual(other *Locker) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// MarkAssigned flips the locker to unavailable as part of the allocation
// transaction and resets occupancy to the Empty baseline.
//
// Returns ErrLockerIsNotAvailable if an allocation already holds the locker.
func (l *Locker) MarkAssigned() error {
	if !l.isAvailable {
		return ErrLockerIsNotAvailable
	}

	l.isAvailable = false
	l.occupancy = Empty
	return nil
}

// MarkUnassigned flips the locker back to available. Used when an allocation
// is removed.
func (l *Locker) MarkUnassigned() {
	l.isAvailable = true
	l.occupancy = Empty
}

// Rename changes the human-readable code.
func (l *Locker) Rename(code string) error {
	return l.setCode(code)
}

// SetAvailability overrides the availability flag directly. Reserved for
// admin corrections through the locker registry; the allocation transaction
// uses MarkAssigned/MarkUnassigned instead.
func (l *Locker) SetAvailability(isAvailable bool) {
	l.isAvailable = isAvailable
}

// SetOccupancy updates the display fill level.
func (l *Locker) SetOccupancy(occupancy OccupancyStatus) error {
	return l.setOccupancy(occupancy)
}

// Validate checks that the locker was built through a constructor.
func (l *Locker) Validate() error {
	return l.guard.Validate(ErrLockerIsNotConstructed)
}

func (l *Locker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

func (l *Locker) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}

	l.siteID = siteID
	return nil
}

func (l *Locker) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code is required")
	}

	l.code = code
	return nil
}

func (l *Locker) setOccupancy(occupancy OccupancyStatus) error {
	if err := occupancy.Validate(); err != nil {
		return err
	}

	l.occupancy = occupancy
	return nil
}
