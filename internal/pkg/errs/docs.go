// Package errs provides standardized error types for the farmaya backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates validation or a business rule
//   - ObjectNotFoundError: an object cannot be found
//   - NotAllowedError: the actor lacks the role or ownership for an action
//   - ConflictError: a conditional write lost a race against a concurrent one
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// The HTTP layer relies on the sentinels to map domain failures to response
// codes: ErrValueIsInvalid/ErrValueIsRequired to 400, ErrActionNotAllowed to
// 403, ErrObjectNotFound to 404 and ErrConflict to 409.
package errs
