// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrUnauthorized indicates no authenticated caller is present.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested entity does not exist or is not
	// visible to the caller. The two cases are deliberately the same error
	// so that existence of other users' rows is never leaked.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the entity is visible but the mutation is
	// disallowed (non-owner, or a system-owned template).
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput indicates a request that violates the input contract
	// (missing required field, out-of-range number).
	ErrInvalidInput = errors.New("invalid input")
)
