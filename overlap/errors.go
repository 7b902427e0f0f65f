package overlap

import "errors"

// ErrNilDrawing indicates Run was given a nil drawing.
var ErrNilDrawing = errors.New("overlap: nil drawing")
