package merge

// maxMergeIterations is the safety cap on fusion passes (spec §4.4
// "Loop... or after 100 iterations").
const maxMergeIterations = 100

// criticalPointPrecision is the number of decimals endpoints are
// rounded to before being compared for critical-point detection (spec
// §4.4 "rounded endpoint (x,y) (to 2 decimals)").
const criticalPointPrecision = 2

// Options configures a Run invocation (spec §4.4).
type Options struct {
	// MaxIterations caps the fusion loop. Zero selects the spec
	// default of 100.
	MaxIterations int
}

func (o Options) maxIterations() int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return maxMergeIterations
}
