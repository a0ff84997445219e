// Package locker provides the Locker entity for the mailroom locker registry.
//
// The package includes:
//   - Locker: a physical storage compartment owned by exactly one site
//   - OccupancyStatus: the display fill level used once a locker is assigned
//
// Key business rules:
//   - A locker's availability flag is owned by the allocation transaction:
//     false exactly while an active allocation references the locker.
//   - A locker never changes site; moving one would invalidate the owning
//     site's incrementally-maintained locker counter.
package locker
