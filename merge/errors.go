package merge

import "errors"

// ErrNilDrawing indicates Run was given a nil drawing.
var ErrNilDrawing = errors.New("merge: nil drawing")
