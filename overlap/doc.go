// Package overlap removes duplicate atoms and merges collinear
// overlapping straight atoms into single covering segments, per
// colour (spec §4.3). Straight atoms (horizontal, vertical, diagonal)
// are merged by projection-interval union over a connected-component
// graph; curve atoms (arcs and Béziers) are deduplicated by sampling
// each same-colour chain and comparing symmetric directed Hausdorff
// distance, with a partial-containment pass and a final residual
// per-atom pass.
//
// Failures inside distance computation never abort the run: a safe
// wrapper reports "no overlap" (+Inf) and logs the cause (spec §4.3
// "Failure semantics"), mirroring the teacher's tsp solvers, which
// reject a candidate move rather than propagate a transient error.
package overlap
