// Package errs provides the typed errors shared by the delivery-order service.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but unusable
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: a keyed lookup found no row
//
// Each type pairs a sentinel (ErrObjectNotFound, ...) with a struct carrying the
// details. Unwrap returns the sentinel so callers can branch with errors.Is and
// still read the offending parameter through errors.As.
package errs
