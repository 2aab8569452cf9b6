// Package errs provides the typed errors shared by the sample tracking service.
//
// Each error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound, ErrVersionIsInvalid) with a struct
// carrying details about the offending parameter. The structs unwrap to their
// sentinel, so callers classify failures with errors.Is and the HTTP adapter
// maps them to status codes without string matching.
package errs
