package flatten

import (
	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// layerInfo is the per-original-layer result of the ungroup walk: the
// fully composed transform and resolved style that apply to any shape
// whose Layer pointer is this original layer, plus the nearest
// surviving (IsLayer) ancestor that shape should be reattached to.
type layerInfo struct {
	transform geom.Matrix
	style     drawing.Style
	survivor  *drawing.Layer
}

// Ungroup recursively hoists group children into their parent,
// composing the group's transform onto each child's transform and
// inheriting style attributes the child does not override (spec
// §4.1). After Ungroup only IsLayer nodes remain in d.Root's tree
// (invariant I1); every *drawing.Shape has had its ancestors' transform
// and style folded in, and shapes with a font-related style are
// dropped entirely (they are text, spec §4.1 "Error modes").
func Ungroup(d *drawing.Drawing) error {
	if d == nil {
		return ErrNilDrawing
	}
	if d.Root == nil {
		return nil
	}
	// The document root always survives as a layer: there is nowhere
	// to hoist its children to otherwise.
	d.Root.IsLayer = true

	info := make(map[*drawing.Layer]*layerInfo)
	walkLayer(d.Root, geom.Identity, drawing.Style{}, d.Root, info)

	shapes := make([]*drawing.Shape, 0, len(d.Shapes))
	for _, s := range d.Shapes {
		if s.IsFontStyled {
			continue
		}
		li, ok := info[s.Layer]
		if !ok {
			li = &layerInfo{transform: geom.Identity, survivor: d.Root}
		}
		shapeTransform := safeTransform(s.Transform)
		s.Transform = li.transform.Mul(shapeTransform)
		s.Style = mergeStyle(li.style, s.Style)
		s.Layer = li.survivor
		shapes = append(shapes, s)
	}
	d.Shapes = shapes

	return nil
}

// walkLayer descends the original tree, accumulating transform and
// style, and rebuilds l's subtree in place so that only IsLayer nodes
// remain. It returns the list of layers that should attach as children
// of l's nearest surviving ancestor (which may be l itself).
func walkLayer(
	l *drawing.Layer,
	accTransform geom.Matrix,
	accStyle drawing.Style,
	survivor *drawing.Layer,
	info map[*drawing.Layer]*layerInfo,
) []*drawing.Layer {
	total := accTransform.Mul(safeTransform(l.Transform))
	resolved := mergeStyle(accStyle, l.Style)

	mySurvivor := survivor
	childTransform := total
	if l.IsLayer {
		mySurvivor = l
		childTransform = geom.Identity
	}
	info[l] = &layerInfo{transform: total, style: resolved, survivor: mySurvivor}

	var collected []*drawing.Layer
	for _, c := range l.Children {
		collected = append(collected, walkLayer(c, childTransform, resolved, mySurvivor, info)...)
	}

	if !l.IsLayer {
		// A dissolved group does not survive; its surviving
		// descendants are passed upward for the nearest IsLayer
		// ancestor to adopt.
		return collected
	}

	// l survives: its own transform has been fully absorbed into every
	// descendant shape and layer, so it resets to Identity.
	l.Transform = geom.Identity
	l.Style = resolved
	l.Children = collected
	for _, c := range collected {
		c.Parent = l
	}

	return []*drawing.Layer{l}
}

// mergeStyle resolves child's style against its inherited parent
// style: a field the child sets wins, otherwise the parent's value
// (itself already resolved) is inherited.
func mergeStyle(parent, child drawing.Style) drawing.Style {
	out := parent
	if child.HasStroke {
		out.Stroke, out.HasStroke = child.Stroke, true
	}
	if child.HasFill {
		out.Fill, out.HasFill = child.Fill, true
	}
	return out
}

// safeTransform replaces a non-finite transform with Identity (spec
// §4.1 "malformed transforms are replaced by identity, non-fatal").
func safeTransform(m geom.Matrix) geom.Matrix {
	if !m.IsFinite() {
		return geom.Identity
	}
	return m
}
