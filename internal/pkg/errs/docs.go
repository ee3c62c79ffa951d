// Package errs provides standardized error types for the address and routing service.
// Every error type wraps a package sentinel so callers can classify failures with
// errors.Is, and KindOf maps any error onto a stable kind tag:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//   - ObjectNotFoundError: scoped lookup misses, including foreign-owner ids
//   - ObjectAlreadyExistsError: a write collides with another row's natural key
//   - ProviderUnavailableError: network, timeout or non-2xx answers from a provider
//   - ProviderRejectedError: a provider answered with a non-success status
//   - MalformedResponseError: a provider answered without the fields we need
//
// Each error type follows the same pattern: a sentinel variable, a struct with the
// error details, constructors with and without cause, Error and Unwrap.
package errs
