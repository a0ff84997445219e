// Package kernel contains shared value objects used across the mailroom
// domain model. The package holds identity primitives that every aggregate
// depends on but that belong to no single bounded context.
//
// The package includes:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Value objects in this package are safe for concurrent use and must be
// created through their constructor functions; zero values fail Validate.
package kernel
