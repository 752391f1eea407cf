package advanced

import "github.com/pkg/errors"

// Error kinds. Every stage wraps one of these with context, so callers can use
// errors.Is to tell them apart. None of them are retried, since the whole
// pipeline is deterministic for a given seed.
var (
	// Bad parameters: non-positive h, inner radius outside (0, r2), or a
	// boundary ring that would get zero vertices.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// The triangulation oracle could not be run at all.
	ErrOracleUnavailable = errors.New("triangulation oracle unavailable")

	// The triangulation oracle ran, but failed or returned malformed output.
	ErrOracleFailure = errors.New("triangulation oracle failure")

	// A free vertex has no neighbors, so it cannot be relaxed.
	ErrDegenerateVertex = errors.New("degenerate vertex")
)
