// Package order decides the final cut order and open-atom direction
// so the head's idle travel is small (spec §4.5): atoms are bucketed
// by colour in the configured palette's order, then each bucket is
// ordered by one of three strategies — greedy nearest-neighbour,
// nearest-neighbour refined by 2-opt local search (directly adapted
// from the teacher's tsp.TwoOpt first-improvement shape), or banded
// serpentine zoning. A final reversal pass and renaming pass close
// out the pipeline.
package order
