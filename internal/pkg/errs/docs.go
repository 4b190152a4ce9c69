// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types covering the failure taxonomy of the order core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - ObjectAlreadyExistsError: a uniqueness conflict on a stored object
//   - InvalidStateError: an operation is not permitted in the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a stable status code and machine-readable kind.
package errs
