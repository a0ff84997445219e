// Package parcel provides the package lifecycle aggregate for the mailroom.
// The Go package is named parcel because "package" is not usable as a Go
// package name; the domain concept is the package received for a customer
// registration.
//
// The package includes:
//   - Parcel: the aggregate root tracking a package from arrival to release,
//     disposal, archival and restoration
//   - Status: the lifecycle state machine
//
// Permanent deletion is a repository operation, not an aggregate method: it
// removes the row outright and is irreversible, so nothing about it belongs
// to the aggregate's state.
package parcel
