// Package errs provides the standardized error types used across the
// restaurant application, from aggregate constructors up to the HTTP layer.
//
// The error types map to the failure modes the domain actually has:
//   - ValueIsRequiredError: a required parameter is missing or empty
//   - ValueIsInvalidError: a parameter is present but malformed
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - InvalidTransitionError: an order status update is not the legal successor
//   - DataIntegrityError: a stored reference points at an object that no longer exists
//
// Each type follows the same pattern: a sentinel for errors.Is checks, a
// struct carrying the failure details for errors.As, constructors with and
// without a cause, and Unwrap support. The HTTP adapter relies on errors.As
// against these structs to pick response status codes, so handlers return
// them unwrapped rather than flattening to strings.
package errs
