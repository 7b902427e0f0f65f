package pipeline

import "errors"

// ErrNilDrawing indicates Run was given a nil drawing.
var ErrNilDrawing = errors.New("pipeline: nil drawing")

// ErrCancelled indicates the run was cancelled (spec §7 "Cancelled").
// The caller's Restore hook, if any, has already been invoked.
var ErrCancelled = errors.New("pipeline: cancelled")
