// Package errs provides standardized error types for the courier service.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed; this is the InvalidInput kind
//     returned for bad weights, categories and the like
//   - ObjectNotFoundError: a lookup matched nothing (unknown shipment id)
//
// Each error type pairs a sentinel (ErrValueIsInvalid, ...) with a struct
// carrying details, so callers can branch with errors.Is or errors.As.
package errs
