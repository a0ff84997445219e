package parcel

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through the NewParcel or RestoreParcel constructors.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate root for a package received on behalf of a
// registration. It owns the package lifecycle: arrival, release request,
// release with proof, disposal, archival (soft delete), restoration, and,
// outside the aggregate at the repository, permanent deletion.
//
// Parcel follows these invariants:
//   - Must have a valid identifier, registration and tracking number
//   - Released packages carry the proof reference they were released with
//   - Archival only sets/clears the soft-delete timestamp; the lifecycle
//     status and proof survive archive/restore round trips unchanged
type Parcel struct {
	// id uniquely identifies the package
	id kernel.UUID

	// registrationID is the owning customer registration
	registrationID kernel.UUID

	// trackingNumber is the carrier tracking number recorded at intake
	trackingNumber string

	// status is the lifecycle state
	status Status

	// releaseProofURL points at the stored proof-of-release evidence
	releaseProofURL *string

	// deletedAt is the soft-delete timestamp; nil while active
	deletedAt *time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a package in the Arrived status, as set at intake.
func NewParcel(id, registrationID kernel.UUID, trackingNumber string) (*Parcel, error) {
	p := &Parcel{
		status: Arrived,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setRegistrationID(registrationID),
		p.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a package from persistence, including its
// proof reference and soft-delete timestamp.
func RestoreParcel(
	id, registrationID kernel.UUID,
	trackingNumber string,
	status Status,
	releaseProofURL *string,
	deletedAt *time.Time,
) (*Parcel, error) {
	p := &Parcel{
		releaseProofURL: releaseProofURL,
		deletedAt:       deletedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setRegistrationID(registrationID),
		p.setTrackingNumber(trackingNumber),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// ID returns the unique identifier of the package.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// RegistrationID returns the owning registration.
func (p *Parcel) RegistrationID() kernel.UUID {
	return p.registrationID
}

// TrackingNumber returns the carrier tracking number.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Status returns the lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// ReleaseProofURL returns the stored proof reference, nil before release.
func (p *Parcel) ReleaseProofURL() *string {
	return p.releaseProofURL
}

// DeletedAt returns the soft-delete timestamp, nil while active.
func (p *Parcel) DeletedAt() *time.Time {
	return p.deletedAt
}

// IsArchived reports whether the package is soft-deleted.
func (p *Parcel) IsArchived() bool {
	return p.deletedAt != nil
}

// IsEqual compares two packages by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// RequestRelease moves the package to ReleaseRequested.
func (p *Parcel) RequestRelease() error {
	status, err := p.status.RequestRelease()
	if err != nil {
		return err
	}

	p.status = status
	return nil
}

// Release moves the package to Released and stores the proof reference.
//
// With enforcePrecondition false (the default policy) any package may be
// force-released; this tolerates admin correction of mishandled items. With
// enforcePrecondition true, only Arrived and ReleaseRequested packages pass.
func (p *Parcel) Release(proofURL string, enforcePrecondition bool) error {
	if proofURL == "" {
		return errs.NewValueIsRequiredError("proofURL is required")
	}

	if enforcePrecondition {
		if err := p.status.ValidateRelease(); err != nil {
			return err
		}
	}

	p.status = Released
	p.releaseProofURL = &proofURL
	return nil
}

// Dispose marks the package as destroyed or discarded. No prior-state check:
// disposal is an admin decision that overrides the lifecycle.
func (p *Parcel) Dispose() {
	p.status = Disposed
}

// Archive soft-deletes the package at the given time. Archiving an already
// archived package simply refreshes the timestamp.
func (p *Parcel) Archive(now time.Time) {
	t := now.UTC()
	p.deletedAt = &t
}

// Restore clears the soft-delete timestamp, returning the package to active
// listings. Restoring a package that is not archived is a no-op.
func (p *Parcel) Restore() {
	p.deletedAt = nil
}

// Validate checks that the package was built through a constructor.
func (p *Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Parcel) setRegistrationID(registrationID kernel.UUID) error {
	if err := registrationID.Validate(); err != nil {
		return err
	}

	p.registrationID = registrationID
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber is required")
	}

	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}
