// Package geom provides the primitive 2D types shared by every stage of
// the laser-cutting pipeline: points, path commands, atomic and compound
// paths, and the distance/similarity functions the overlap engine and the
// ordering engine are built on.
//
// Design goals:
//   - Determinism: no floating point shortcuts that depend on machine or
//     compiler details beyond IEEE 754 double precision.
//   - A single tolerance discipline: every equality test in this package
//     goes through Epsilon or a caller-supplied tolerance, never a bare
//     ==.
//   - Zero hidden state: the only stateful type is DistanceCache, and its
//     lifetime is owned entirely by the caller (normally one pipeline
//     run, never global).
package geom
