package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// Provider failure kinds. All three surface to callers through ErrEnrichment;
// the distinction exists for logging and tests.

// ErrTransportFailure indicates a network or HTTP-level failure talking to an
// external provider, including timeouts and non-2xx responses.
var ErrTransportFailure = errors.New("provider transport failure")

// ErrMalformedResponse indicates a provider response body that could not be
// parsed into the expected structure. A field that parses to zero or empty is
// a valid value, not a malformed response.
var ErrMalformedResponse = errors.New("provider response malformed")

// ErrRateNotFound indicates a well-formed currency provider response that
// lacks a rate for the configured home currency.
var ErrRateNotFound = errors.New("currency rate not found")

// ErrEnrichment is the single failure surfaced when either provider gateway
// fails during expense enrichment. The underlying provider error stays in the
// chain for diagnostics.
var ErrEnrichment = errors.New("enrichment failed")
