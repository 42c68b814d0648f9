package ltest

// SyncPhaser is a frame.Phaser for tests. Nothing runs until Flush, so a
// test can enqueue work, call Flush once per simulated frame, and assert
// on the state between frames.
type SyncPhaser struct {
	measures  []func()
	mutations []func()
	frames    int
}

// RequestMeasure queues fn for the read phase of the next Flush.
func (p *SyncPhaser) RequestMeasure(fn func()) {
	p.measures = append(p.measures, fn)
}

// RequestMutation queues fn for the write phase. A mutation requested
// during a Flush's read phase runs in that same Flush.
func (p *SyncPhaser) RequestMutation(fn func()) {
	p.mutations = append(p.mutations, fn)
}

// Flush runs exactly one frame: the queued measures, then the mutations
// queued before or during them. Measures requested from a mutation wait
// for the next Flush, matching the live frame loop.
func (p *SyncPhaser) Flush() {
	p.frames++

	measures := p.measures
	p.measures = nil
	for _, fn := range measures {
		fn()
	}

	mutations := p.mutations
	p.mutations = nil
	for _, fn := range mutations {
		fn()
	}
}

// Settle flushes frames until no work remains, up to the given limit.
// It returns the number of frames flushed. Use it when a test only cares
// about the quiescent state, not per-frame ordering.
func (p *SyncPhaser) Settle(limit int) int {
	flushed := 0
	for flushed < limit && p.Pending() {
		p.Flush()
		flushed++
	}
	return flushed
}

// Pending reports whether any callbacks are queued.
func (p *SyncPhaser) Pending() bool {
	return len(p.measures) > 0 || len(p.mutations) > 0
}

// Frames returns the number of Flush calls so far.
func (p *SyncPhaser) Frames() int {
	return p.frames
}
