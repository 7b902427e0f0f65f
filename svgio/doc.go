// Package svgio is the thin boundary adapter between the core pipeline
// and the SVG-on-disk dialect (spec §6): decoding an SVG document into
// a drawing.Drawing, encoding one back out in the same dialect, and
// loading the persisted colour/speed catalogue. None of this is part
// of the four core subsystems; it exists only so cmd/lasercore has
// something concrete to call.
//
// Decode/Encode are grounded on the teacher's tree-building style
// (core's adjacency construction from a flat edge list) generalized to
// building a drawing.Layer tree from a flat stream of xml.Token
// values.
package svgio
