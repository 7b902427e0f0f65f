package drawing

import "errors"

var (
	// ErrNilDrawing indicates an operation was given a nil *Drawing.
	ErrNilDrawing = errors.New("drawing: nil drawing")

	// ErrNilShape indicates an operation was given a nil *Shape.
	ErrNilShape = errors.New("drawing: nil shape")

	// ErrShapeNotFound indicates a shape ID does not exist in the drawing.
	ErrShapeNotFound = errors.New("drawing: shape not found")
)
