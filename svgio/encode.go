package svgio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/optimlaser/lasercore/drawing"
	"github.com/optimlaser/lasercore/geom"
)

// Encode writes d back out in the spec §6 "Output drawing" dialect:
// the same namespaced-element vocabulary Decode reads, one svg:g per
// surviving drawing.Layer (inkscape:groupmode="layer" set for IsLayer
// nodes) wrapping its shapes in document order. Every shape the
// pipeline itself produced is already a PrimPath with an identity
// Transform (invariant I1 held since flatten); grey-snapshot shapes
// that bypassed the pipeline keep whatever primitive and transform
// they arrived with, so Encode serializes every primitive kind, not
// only paths.
func Encode(w io.Writer, d *drawing.Drawing) error {
	if d == nil {
		return ErrNilDrawing
	}

	byLayer := make(map[*drawing.Layer][]*drawing.Shape, len(d.Shapes))
	for _, s := range d.Shapes {
		byLayer[s.Layer] = append(byLayer[s.Layer], s)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	b.WriteString(`<svg:svg xmlns:svg="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">` + "\n")
	writeLayer(&b, d.Root, byLayer)
	b.WriteString("</svg:svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLayer(b *strings.Builder, l *drawing.Layer, byLayer map[*drawing.Layer][]*drawing.Shape) {
	fmt.Fprintf(b, `<svg:g id=%s`, quote(l.ID))
	if l.IsLayer {
		b.WriteString(` inkscape:groupmode="layer"`)
		if l.Name != "" {
			fmt.Fprintf(b, ` inkscape:label=%s`, quote(l.Name))
		}
	}
	if !l.Transform.IsIdentity() {
		fmt.Fprintf(b, ` transform=%s`, quote(encodeTransform(l.Transform)))
	}
	b.WriteString(">\n")

	for _, s := range byLayer[l] {
		writeShape(b, s)
	}
	for _, c := range l.Children {
		writeLayer(b, c, byLayer)
	}

	b.WriteString("</svg:g>\n")
}

func writeShape(b *strings.Builder, s *drawing.Shape) {
	style := encodeStyle(s.Style)
	var transformAttr string
	if !s.Transform.IsIdentity() {
		transformAttr = fmt.Sprintf(` transform=%s`, quote(encodeTransform(s.Transform)))
	}

	switch s.Primitive {
	case drawing.PrimPath:
		fmt.Fprintf(b, `<svg:path id=%s style=%s d=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(s.Path.Encode()), transformAttr)

	case drawing.PrimRect:
		g := s.Geom
		fmt.Fprintf(b, `<svg:rect id=%s style=%s x=%s y=%s width=%s height=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(num(g.X)), quote(num(g.Y)), quote(num(g.W)), quote(num(g.H)), transformAttr)

	case drawing.PrimLine:
		g := s.Geom
		fmt.Fprintf(b, `<svg:line id=%s style=%s x1=%s y1=%s x2=%s y2=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(num(g.X1)), quote(num(g.Y1)), quote(num(g.X2)), quote(num(g.Y2)), transformAttr)

	case drawing.PrimCircle:
		g := s.Geom
		fmt.Fprintf(b, `<svg:circle id=%s style=%s cx=%s cy=%s r=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(num(g.CX)), quote(num(g.CY)), quote(num(g.RX)), transformAttr)

	case drawing.PrimEllipse:
		g := s.Geom
		fmt.Fprintf(b, `<svg:ellipse id=%s style=%s cx=%s cy=%s rx=%s ry=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(num(g.CX)), quote(num(g.CY)), quote(num(g.RX)), quote(num(g.RY)), transformAttr)

	case drawing.PrimPolyline:
		fmt.Fprintf(b, `<svg:polyline id=%s style=%s points=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(encodePoints(s.Geom.Points)), transformAttr)

	case drawing.PrimPolygon:
		fmt.Fprintf(b, `<svg:polygon id=%s style=%s points=%s%s/>`+"\n",
			quote(s.ID), quote(style), quote(encodePoints(s.Geom.Points)), transformAttr)
	}
}

func encodePoints(pts []geom.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

// encodeTransform renders m as a single SVG matrix() function, the
// canonical form: every composed rotate/scale/skew collapses to one
// matrix by the time a shape reaches Encode.
func encodeTransform(m geom.Matrix) string {
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", num(m.A), num(m.B), num(m.C), num(m.D), num(m.E), num(m.F))
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func quote(s string) string {
	r := strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	return `"` + r.Replace(s) + `"`
}
