package order

import "errors"

// ErrNilDrawing indicates Run was given a nil drawing.
var ErrNilDrawing = errors.New("order: nil drawing")
