// Package kernel contains shared value objects used across the domain model:
// UUID identity values and GeoPoint geographic coordinates.
//
// All kernel types are immutable value objects constructed through factory
// functions that enforce their invariants. Zero values are invalid and fail
// Validate, so improperly initialized values are caught at the first use.
package kernel
