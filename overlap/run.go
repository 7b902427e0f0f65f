package overlap

import (
	"context"
	"sort"

	"github.com/optimlaser/lasercore/colour"
	"github.com/optimlaser/lasercore/drawing"
)

type bucketKey struct {
	colour colour.Colour
	has    bool
	kind   rune
}

// Run executes the overlap engine (spec §4.3) over every atomic shape
// in d: atoms are grouped by colour and path-command kind, straight
// atoms go through mergeStraight, curve atoms (arc/cubic/quadratic)
// through mergeCurves, and the result replaces d.Shapes. Non-atomic
// shapes (none should remain after atomize.Atomize) pass through
// unchanged. ctx is polled once per colour/kind bucket (spec §5).
func Run(ctx context.Context, d *drawing.Drawing, opts Options) error {
	if d == nil {
		return ErrNilDrawing
	}
	logger := opts.logger()

	buckets := map[bucketKey][]*drawing.Shape{}
	var passthrough []*drawing.Shape
	for _, s := range d.Shapes {
		kind, ok := s.Path.Kind()
		if !ok {
			passthrough = append(passthrough, s)
			continue
		}
		key := bucketKey{colour: s.Style.Stroke, has: s.Style.HasStroke, kind: kind}
		buckets[key] = append(buckets[key], s)
	}

	keys := make([]bucketKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.colour.Hex() != b.colour.Hex() {
			return a.colour.Hex() < b.colour.Hex()
		}
		if a.has != b.has {
			return !a.has && b.has
		}
		return a.kind < b.kind
	})

	var out []*drawing.Shape
	out = append(out, passthrough...)
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		shapes := buckets[key]
		if key.kind == 'L' {
			out = append(out, mergeStraight(shapes, opts.Tolerance, opts.Cache)...)
		} else {
			out = append(out, mergeCurves(shapes, opts.Tolerance, logger)...)
		}
	}
	d.Shapes = out

	return nil
}
