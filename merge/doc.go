// Package merge fuses chains of atoms that together trace a single
// logical curve, while refusing to cross critical junctions — points
// where three or more atoms meet (spec §4.4).
//
// The endpoint graph is rebuilt from the live atom set on every
// iteration rather than held as a persistent object graph: a map
// `(point, colour) → atom ids` is enough, and it sidesteps the
// owning-cycle problems a real graph.Graph would raise when atoms are
// fused and removed mid-loop (spec §9 "Graph without cycles of
// references"). Only the critical-point set is computed once per
// invocation and held fixed for the whole loop.
package merge
