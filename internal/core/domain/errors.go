package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Credential Errors.

	// ErrCredentialIncomplete indicates a required credential field could not
	// be obtained from explicit input, the vault, or prompting. Fatal to the
	// affected service's resolution.
	ErrCredentialIncomplete = errors.New("credential incomplete")

	// ErrVaultUnavailable indicates the secret vault backend is unreachable.
	// Recoverable: resolution treats it as a cache miss and falls through
	// to prompting.
	ErrVaultUnavailable = errors.New("secret vault unavailable")

	// Annotation Errors.

	// ErrTermNotFound indicates a term identifier has no entry in the label
	// store. Recoverable: surfaced per term, never aborts a batch.
	ErrTermNotFound = errors.New("term not found")

	// ErrRecordSourceUnavailable indicates the record store query failed.
	// Fatal to the aggregation invocation; no partial aggregation is
	// attempted without the record set.
	ErrRecordSourceUnavailable = errors.New("record source unavailable")
)
