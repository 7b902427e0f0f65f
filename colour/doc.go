// Package colour models the stroke/fill colours the pipeline sorts and
// filters by: parsing, grey detection (spec §2 step 1: "fill OR stroke
// is a grey"), and the ordered cutting Palette (spec §4.5: "Iterate
// colours in the configured palette's order").
package colour
