// Package atomize splits every flattened path into atomic paths — one
// per drawing command — dropping zero-length atoms and materializing
// the implicit closing segment of the last subpath when it differs
// from that subpath's start (spec §4.2).
package atomize
