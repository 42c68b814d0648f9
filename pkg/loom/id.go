package loom

import "sync/atomic"

// globalIDCounter is the source of unique instance ids.
// Ids are monotonically increasing and never reused for the process
// lifetime; creation order approximates parent-before-child tree order,
// which the scheduler's flush ordering relies on.
var globalIDCounter uint64

// nextID returns the next unique instance id.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
