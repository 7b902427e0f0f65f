package svgio

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// Logger receives one warning per shape dropped for a malformed
	// path command (spec §7 "MalformedCommand": the offending atom is
	// skipped, others proceed). Defaults to slog.Default().
	Logger *slog.Logger
}

func (o DecodeOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Decode reads an SVG document (spec §6 "Input drawing") into a
// drawing.Drawing: svg:g elements become Layers (survivor layers when
// inkscape:groupmode="layer" is set, transient groups otherwise, both
// resolved later by flatten.Ungroup), the geometry primitives become
// Shapes, and svg:text is ignored per spec §4.1.
func Decode(r io.Reader, opts DecodeOptions) (*drawing.Drawing, error) {
	logger := opts.logger()
	dec := xml.NewDecoder(r)

	d := drawing.NewDrawing()
	layerStack := []*drawing.Layer{d.Root}
	current := func() *drawing.Layer { return layerStack[len(layerStack)-1] }

	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		if end, ok := tok.(xml.EndElement); ok {
			if end.Name.Local == "g" {
				layerStack = layerStack[:len(layerStack)-1]
			}
			continue
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "svg":
			if !sawRoot {
				// The root element itself carries no layer semantics
				// beyond being the top of the tree; d.Root already
				// represents it.
				sawRoot = true
				continue
			}
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}

		case "g":
			layer := decodeLayer(start)
			current().AddChild(layer)
			layerStack = append(layerStack, layer)

		case "path", "rect", "line", "circle", "ellipse", "polyline", "polygon":
			shape, err := decodeShape(start)
			if err != nil {
				logger.Warn("svgio: skipping malformed shape", "id", attr(start, "id"), "error", err)
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
				}
				continue
			}
			shape.Layer = current()
			d.Shapes = append(d.Shapes, shape)
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}

		case "text":
			// Text is ignored outright (spec §4.1): not even kept as
			// an IsFontStyled shape, since it carries no cuttable
			// geometry at all.
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}

		default:
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
		}
	}

	return d, nil
}

func decodeLayer(start xml.StartElement) *drawing.Layer {
	style, _ := parseStyle(attr(start, "style"), attr(start, "fill"), attr(start, "stroke"))
	transform := parseTransformAttr(attr(start, "transform"))

	name := attr(start, "label")
	if name == "" {
		name = attr(start, "id")
	}

	return &drawing.Layer{
		ID:        attr(start, "id"),
		Name:      name,
		IsLayer:   attr(start, "groupmode") == "layer",
		Transform: transform,
		Style:     style,
	}
}

func decodeShape(start xml.StartElement) (*drawing.Shape, error) {
	style, fontStyled := parseStyle(attr(start, "style"), attr(start, "fill"), attr(start, "stroke"))
	transform := parseTransformAttr(attr(start, "transform"))

	s := &drawing.Shape{
		ID:           attr(start, "id"),
		Style:        style,
		IsFontStyled: fontStyled,
		Transform:    transform,
	}

	switch start.Name.Local {
	case "path":
		p, err := geom.ParsePathData(attr(start, "d"))
		if err != nil {
			return nil, err
		}
		s.Primitive = drawing.PrimPath
		s.Path = p

	case "rect":
		s.Primitive = drawing.PrimRect
		s.Geom = drawing.Geometry{
			X: f(start, "x"), Y: f(start, "y"),
			W: f(start, "width"), H: f(start, "height"),
		}

	case "line":
		s.Primitive = drawing.PrimLine
		s.Geom = drawing.Geometry{
			X1: f(start, "x1"), Y1: f(start, "y1"),
			X2: f(start, "x2"), Y2: f(start, "y2"),
		}

	case "circle":
		r := f(start, "r")
		s.Primitive = drawing.PrimCircle
		s.Geom = drawing.Geometry{CX: f(start, "cx"), CY: f(start, "cy"), RX: r, RY: r}

	case "ellipse":
		s.Primitive = drawing.PrimEllipse
		s.Geom = drawing.Geometry{
			CX: f(start, "cx"), CY: f(start, "cy"),
			RX: f(start, "rx"), RY: f(start, "ry"),
		}

	case "polyline":
		s.Primitive = drawing.PrimPolyline
		s.Geom = drawing.Geometry{Points: parsePoints(attr(start, "points"))}

	case "polygon":
		s.Primitive = drawing.PrimPolygon
		s.Geom = drawing.Geometry{Points: parsePoints(attr(start, "points"))}
	}

	return s, nil
}

// parseTransformAttr falls back to Identity on a missing or malformed
// transform attribute (spec §4.1 error modes), never propagating the
// error: a document is never rejected over one bad transform.
func parseTransformAttr(v string) geom.Matrix {
	if v == "" {
		return geom.Identity
	}
	m, err := geom.ParseTransform(v)
	if err != nil {
		return geom.Identity
	}
	return m
}

func parsePoints(v string) []geom.Point {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	pts := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, err1 := strconv.ParseFloat(fields[i], 64)
		y, err2 := strconv.ParseFloat(fields[i+1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts
}

// attr returns the value of the first attribute on start whose local
// name matches, ignoring namespace (so both bare "groupmode" and
// "inkscape:groupmode" resolve the same way).
func attr(start xml.StartElement, local string) string {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func f(start xml.StartElement, local string) float64 {
	v, err := strconv.ParseFloat(attr(start, local), 64)
	if err != nil {
		return 0
	}
	return v
}
