// Package commands contains the business operations that modify mailroom
// state. All commands follow a consistent pattern: guard-validated command
// objects, a handler with a Handle(ctx, command) method, and explicit
// compensating actions where an operation spans more than one datastore
// write: the datastore offers per-row atomicity only, so there is no
// transaction to lean on.
package commands

import (
	"mailroom/internal/core/ports"
)

// Store interfaces narrow the repositories a handler can reach. Handlers
// declare the smallest store they need, which keeps test doubles small and
// makes each operation's write surface explicit.
type (
	// SiteStore provides access to the site repository.
	SiteStore interface {
		SiteRepository() ports.SiteRepository
	}

	// LockerStore provides access to the locker repository.
	LockerStore interface {
		LockerRepository() ports.LockerRepository
	}

	// AllocationStore provides access to the allocation repository.
	AllocationStore interface {
		AllocationRepository() ports.AllocationRepository
	}

	// ParcelStore provides access to the package repository.
	ParcelStore interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RegistryStore spans sites and lockers. Used by the locker registry
	// operations that must adjust the owning site's capacity counter.
	RegistryStore interface {
		SiteStore
		LockerStore
	}

	// AssignmentStore spans lockers and allocations. Used by the
	// allocation transaction.
	AssignmentStore interface {
		LockerStore
		AllocationStore
	}
)
