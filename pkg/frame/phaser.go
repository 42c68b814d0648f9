package frame

// Phaser provides the two frame-phase callback queues the scheduler runs
// against. Implementations guarantee that, within one display frame, every
// requested measure (read-phase) callback runs before every requested
// mutation (write-phase) callback, and that a mutation requested from
// inside a measure callback still runs in the same frame.
type Phaser interface {
	// RequestMeasure queues fn for the read phase of the next frame.
	RequestMeasure(fn func())

	// RequestMutation queues fn for the write phase of the current frame
	// when called from a measure callback, otherwise of the next frame.
	RequestMutation(fn func())
}
