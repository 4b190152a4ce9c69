// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection-friendly rows
// straight from the database, returning response DTOs shaped for the API.
package queries
