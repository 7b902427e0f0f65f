package atomize

import "errors"

// ErrNilDrawing indicates Atomize was given a nil drawing.
var ErrNilDrawing = errors.New("atomize: nil drawing")
