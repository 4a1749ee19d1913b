package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuery indicates the full-text index rejected or failed a query,
	// for example input containing characters illegal in the index's
	// query syntax. It is propagated to the caller, never swallowed.
	ErrQuery = errors.New("index query failed")

	// ErrDownload indicates a dataset download failed with a transport
	// error or a non-success status. Download failures are silent and
	// retried on the next freshness check.
	ErrDownload = errors.New("dataset download failed")

	// ErrReplace indicates committing a new dataset failed. The prior
	// dataset must remain fully intact when this is returned.
	ErrReplace = errors.New("dataset replacement failed")
)
