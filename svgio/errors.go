package svgio

import "errors"

// Sentinel errors mapping spec §7's error taxonomy onto the boundary
// layer (UnsavedSource and MalformedCommand are the two that originate
// here; DegenerateGeometry and Cancelled belong to the core packages).
var (
	// ErrUnsavedSource indicates the input drawing has no backing file
	// path, so there is nowhere to derive the "- decoupe" sibling name
	// from and nothing to restore on cancellation.
	ErrUnsavedSource = errors.New("svgio: source is not backed by a file")

	// ErrMalformedDocument indicates the XML stream itself is not
	// well-formed (distinct from a single bad path command, which
	// Decode tolerates per spec §4.1/§7 "MalformedCommand").
	ErrMalformedDocument = errors.New("svgio: malformed SVG document")

	// ErrNilDrawing indicates Encode was given a nil *drawing.Drawing.
	ErrNilDrawing = errors.New("svgio: nil drawing")

	// ErrInvalidCatalogue indicates the persisted catalogue JSON could
	// not be parsed.
	ErrInvalidCatalogue = errors.New("svgio: invalid catalogue")
)
