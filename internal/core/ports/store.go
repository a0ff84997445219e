// Package ports defines the contracts between the mailroom engine and its
// collaborators: the relational datastore repositories and the object
// storage service. These interfaces establish dependency inversion between
// the application core and the adapters.
package ports

// Store hands out repositories bound to the shared datastore connection.
//
// The datastore collaborator guarantees per-row atomic updates only; there
// is no multi-row transaction spanning repository calls. Every repository
// call is an independent network round-trip, and multi-step operations rely
// on explicit compensating actions instead of a transaction boundary.
type Store interface {
	SiteRepository() SiteRepository
	LockerRepository() LockerRepository
	AllocationRepository() AllocationRepository
	ParcelRepository() ParcelRepository
}
