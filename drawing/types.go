package drawing

import (
	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/geom"
)

// Primitive tags what a pre-flatten Shape actually is. After flatten
// every Shape has Primitive == PrimPath (spec invariant I1).
type Primitive int

const (
	PrimPath Primitive = iota
	PrimRect
	PrimLine
	PrimCircle
	PrimEllipse
	PrimPolyline
	PrimPolygon
)

// Geometry holds the raw parameters of a non-path primitive, read by
// flatten.ToPath and discarded once the Shape becomes PrimPath.
type Geometry struct {
	// Rect
	X, Y, W, H float64
	// Line
	X1, Y1, X2, Y2 float64
	// Circle / Ellipse
	CX, CY, RX, RY float64
	// Polyline / Polygon
	Points []geom.Point
}

// Style holds stroke/fill attributes shared by Layer (for inheritance)
// and Shape (for the element's own, possibly-overriding, value).
type Style struct {
	Stroke    colour.Colour
	HasStroke bool // false means stroke="none" or unset

	Fill    colour.Colour
	HasFill bool // false means fill="none" or unset
}

// Layer is a node in the drawing's group/layer tree. Pre-flatten it
// represents both plain <svg:g> groups (IsLayer == false, dissolved by
// flatten.Ungroup) and Inkscape layers (IsLayer == true,
// inkscape:groupmode="layer", which persist as organizational
// containers for the flat Shapes list). Post-flatten (invariant I1)
// only IsLayer nodes remain in the tree.
type Layer struct {
	ID        string
	Name      string
	IsLayer   bool
	Transform geom.Matrix
	Style     Style
	Parent    *Layer
	Children  []*Layer
}

// AddChild appends child to l's children and sets its Parent.
func (l *Layer) AddChild(child *Layer) {
	child.Parent = l
	l.Children = append(l.Children, child)
}

// RemoveChild detaches child from l, if present.
func (l *Layer) RemoveChild(child *Layer) {
	for i, c := range l.Children {
		if c == child {
			l.Children = append(l.Children[:i], l.Children[i+1:]...)
			return
		}
	}
}

// Shape is a single drawable element (spec §3). After flatten, Path
// holds absolute, transform-free path data and Transform is always
// geom.Identity.
type Shape struct {
	ID        string
	Primitive Primitive
	Path      geom.Path
	Geom      Geometry
	Style     Style

	// IsFontStyled marks text-like elements (spec §4.1 "Shapes with a
	// font-related style attribute are skipped").
	IsFontStyled bool

	Transform geom.Matrix
	Layer     *Layer
}

// Clone returns a deep copy of s's path and geometry; the copy shares
// s's Layer pointer.
func (s *Shape) Clone() *Shape {
	cp := *s
	cp.Path = s.Path.Clone()
	if len(s.Geom.Points) > 0 {
		cp.Geom.Points = make([]geom.Point, len(s.Geom.Points))
		copy(cp.Geom.Points, s.Geom.Points)
	}
	return &cp
}

// Drawing is the mutable document the whole pipeline operates on: an
// ordered list of Shapes (draw order, and after §4.5, cut order) plus
// a Layer tree, and the grey-snapshot side list (spec §3 "Lifecycle").
type Drawing struct {
	Shapes []*Shape
	Root   *Layer

	// Grey holds shapes detached by the grey snapshot (§2 step 1) from
	// phase 1 to phase 8; no other phase touches it.
	Grey []*Shape
}

// NewDrawing returns an empty drawing with a root layer.
func NewDrawing() *Drawing {
	root := &Layer{ID: "root", IsLayer: true, Transform: geom.Identity}
	return &Drawing{Root: root}
}

// IndexOf returns the position of shape id in d.Shapes, or -1.
func (d *Drawing) IndexOf(id string) int {
	for i, s := range d.Shapes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// RemoveShape detaches the shape with the given id from Shapes and
// from its layer. No-op if the id is not present.
func (d *Drawing) RemoveShape(id string) {
	idx := d.IndexOf(id)
	if idx < 0 {
		return
	}
	d.Shapes = append(d.Shapes[:idx], d.Shapes[idx+1:]...)
}

// Clone returns a deep copy of the drawing, layer tree included; the
// copied shapes point at the copied layers.
func (d *Drawing) Clone() *Drawing {
	out := &Drawing{}
	layerCopy := map[*Layer]*Layer{}
	out.Root = cloneLayer(d.Root, nil, layerCopy)

	out.Shapes = make([]*Shape, len(d.Shapes))
	for i, s := range d.Shapes {
		cp := s.Clone()
		cp.Layer = layerCopy[s.Layer]
		out.Shapes[i] = cp
	}
	out.Grey = make([]*Shape, len(d.Grey))
	for i, s := range d.Grey {
		cp := s.Clone()
		cp.Layer = layerCopy[s.Layer]
		out.Grey[i] = cp
	}
	return out
}

func cloneLayer(l *Layer, parent *Layer, seen map[*Layer]*Layer) *Layer {
	if l == nil {
		return nil
	}
	cp := &Layer{ID: l.ID, Name: l.Name, IsLayer: l.IsLayer, Transform: l.Transform, Style: l.Style, Parent: parent}
	seen[l] = cp
	for _, c := range l.Children {
		cp.Children = append(cp.Children, cloneLayer(c, cp, seen))
	}
	return cp
}
