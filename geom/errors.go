package geom

import "errors"

// Sentinel errors for malformed geometry. Per the pipeline's error
// taxonomy these are never fatal to a whole run: callers treat them as
// "skip this atom" or "not a duplicate", never as a reason to abort.
var (
	// ErrEmptyPath indicates a Path with no commands.
	ErrEmptyPath = errors.New("geom: path has no commands")

	// ErrFirstCommandNotMove indicates a Path whose first command is not Move.
	ErrFirstCommandNotMove = errors.New("geom: first command is not Move")

	// ErrNotAtomic indicates an operation that requires an atomic path
	// (Move followed by exactly one drawing command) was given something else.
	ErrNotAtomic = errors.New("geom: path is not atomic")

	// ErrDegenerateSample indicates a sampling request could not produce
	// a usable point set (e.g. n < 2, or coincident control points).
	ErrDegenerateSample = errors.New("geom: degenerate sample request")

	// ErrMalformedPath indicates a "d" attribute string ParsePathData
	// could not parse (spec §7 "MalformedCommand"): the caller skips
	// the offending shape rather than aborting the run.
	ErrMalformedPath = errors.New("geom: malformed path data")

	// ErrMalformedTransform indicates a "transform" attribute
	// ParseTransform could not parse; callers fall back to Identity
	// (spec §4.1 error modes), never abort the run.
	ErrMalformedTransform = errors.New("geom: malformed transform")
)
