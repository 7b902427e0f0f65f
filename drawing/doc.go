// Package drawing defines the abstract document model the pipeline
// mutates: Shape, Layer, and Drawing (spec §3 Data Model), plus the
// Config and Stats records that cross the core's boundary (spec §6).
//
// Drawing plays the role the teacher's core.Graph plays for lvlath: the
// central, directly-mutated value every other package operates on. Two
// differences from core.Graph are deliberate, not oversights:
//
//   - No locking. Spec §5 mandates the whole pipeline run single
//     threaded, synchronously, to completion — carrying core.Graph's
//     sync.RWMutex pair here would imply a concurrency model the spec
//     explicitly rules out.
//   - IDs are reassigned by the pipeline itself (atomize and finally
//     order's renaming pass both mint new IDs), whereas
//     core.Vertex IDs are caller-owned and immutable.
package drawing
