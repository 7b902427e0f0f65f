// Package flatten produces a flat list of transform-free shapes from
// an arbitrary group/layer tree (spec §4.1): Ungroup hoists group
// children into their parent while composing transforms and
// inheriting style, BakeTransform applies a shape's own transform
// into its path data, and ToPath converts the non-path primitives
// (rect, line, circle, ellipse, polyline, polygon) into equivalent
// Path data.
//
// Ungroup plays the role the teacher's core tree-walking clone methods
// play for lvlath: a recursive structural copy, except flatten's walk
// also accumulates transform and style state as it descends.
package flatten
