package site

import (
	"errors"
	"math"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrSiteIsNotConstructed is returned when a Site instance was not created
// through the NewSite or RestoreSite constructors.
var ErrSiteIsNotConstructed = errors.New("Site must be created via NewSite constructor")

// Site is the aggregate root for a mailroom location. Besides its descriptive
// fields it carries totalLockers, a denormalized count of the lockers
// provisioned at the site.
//
// Invariant: totalLockers equals the number of live Locker rows owned by the
// site. The counter is maintained incrementally on locker creation and
// removal and is never recomputed from a scan on the read path; a periodic
// reconciliation job repairs any drift.
//
// The counter methods deliberately mirror how the writes behave against the
// datastore:
//   - RecordLockerProvisioned is a plain increment.
//   - RecordLockerRemoved floors at zero. The counter must never go negative
//     even when it was already out of sync with the live locker count.
type Site struct {
	// id uniquely identifies the site
	id kernel.UUID

	// name is the human-readable site name shown in the admin console
	name string

	// address is the street address packages are received at
	address string

	// totalLockers is the denormalized count of lockers provisioned here
	totalLockers int

	guard guard.ConstructorGuard
}

// NewSite creates a Site with an empty locker inventory. The counter starts
// at zero; it only ever changes through the Record* methods.
func NewSite(id kernel.UUID, name, address string) (*Site, error) {
	s := &Site{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setID(id), s.setName(name), s.setAddress(address)); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSite reconstructs a Site from persistence, including its current
// counter value. The restored aggregate behaves identically to one built up
// through domain operations.
func RestoreSite(id kernel.UUID, name, address string, totalLockers int) (*Site, error) {
	s := &Site{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setAddress(address),
		s.setTotalLockers(totalLockers),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the unique identifier of the site.
func (s *Site) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable site name.
func (s *Site) Name() string {
	return s.name
}

// Address returns the street address of the site.
func (s *Site) Address() string {
	return s.address
}

// TotalLockers returns the denormalized locker count.
func (s *Site) TotalLockers() int {
	return s.totalLockers
}

// IsEqual compares two sites by identity.
func (s *Site) IsEqual(other *Site) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// RecordLockerProvisioned increments the locker counter. Precondition: the
// locker row has already been durably created.
func (s *Site) RecordLockerProvisioned() {
	s.totalLockers++
}

// RecordLockerRemoved decrements the locker counter, flooring at zero.
//
// The returned flag reports whether flooring was applied, which means the
// counter was already out of sync before the removal. Callers must surface
// that as a consistency fault rather than swallow it.
func (s *Site) RecordLockerRemoved() (floored bool) {
	if s.totalLockers == 0 {
		return true
	}

	s.totalLockers--
	return false
}

// SetLockerCount overwrites the counter with a value obtained from a true
// scan of the locker table. Reserved for the reconciliation path; ordinary
// writes go through the Record* methods.
func (s *Site) SetLockerCount(count int) error {
	return s.setTotalLockers(count)
}

// Validate checks that the site was built through a constructor.
func (s *Site) Validate() error {
	return s.guard.Validate(ErrSiteIsNotConstructed)
}

func (s *Site) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Site) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	s.name = name
	return nil
}

func (s *Site) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}

	s.address = address
	return nil
}

func (s *Site) setTotalLockers(totalLockers int) error {
	if totalLockers < 0 {
		return errs.NewValueIsOutOfRangeError("totalLockers", totalLockers, 0, math.MaxInt)
	}

	s.totalLockers = totalLockers
	return nil
}
