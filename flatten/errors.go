package flatten

import "errors"

var (
	// ErrNilDrawing indicates Ungroup (and so Flatten) was given a nil
	// drawing.
	ErrNilDrawing = errors.New("flatten: nil drawing")

	// ErrUnknownPrimitive indicates ToPath was asked to convert a
	// Primitive value it does not recognize.
	ErrUnknownPrimitive = errors.New("flatten: unknown primitive")
)
