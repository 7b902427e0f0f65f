// Command and library lasercore optimizes a 2D vector drawing ahead of
// a laser cutting pass: it separates grey engraving targets from
// cuttable geometry, filters shapes to a configured colour palette,
// flattens the document into transform-free atomic paths, removes
// duplicate or overlapping segments, re-merges contiguous atoms into
// longer cuts, and orders the result to minimize idle head travel.
//
// The pipeline is organized as one package per concern:
//
//	geom/     — points, paths, matrices, sampling, Hausdorff distance
//	colour/   — colour parsing and cut-order palettes
//	drawing/  — the document model (Drawing/Shape/Layer) and config
//	flatten/  — group flattening, transform baking, primitive-to-path
//	atomize/  — splitting compound paths into single-command atoms
//	overlap/  — duplicate/overlapping segment removal
//	merge/    — re-fusing contiguous atoms at non-critical junctions
//	order/    — per-colour cut ordering (nearest-neighbour/2-opt/zoning)
//	pipeline/ — phase orchestration, cancellation, grey-snapshot restore
//	svgio/    — the SVG and catalogue-JSON boundary adapter
//	cmd/lasercore/ — the command-line entry point
package lasercore
