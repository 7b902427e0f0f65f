// Package pipeline orchestrates the eight phases of spec §2 over a
// drawing.Drawing: grey snapshot, colour filter, flatten, atomize,
// overlap, merge, order, grey restore. It polls a context.Context for
// cancellation between phases (spec §5), restoring the caller-supplied
// original bytes through a Restore hook on cancellation, and never
// touches the filesystem itself — that is svgio's and cmd's job.
//
// Grounded on the teacher's tsp.SolveWithMatrix dispatcher: validate
// once, then delegate to one stage after another, threading a single
// mutable state value through.
package pipeline
