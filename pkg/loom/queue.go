package loom

// hookKey identifies one hook slot of one instance in the scheduler's
// effect and cleanup queues.
type hookKey struct {
	owner uint64
	slot  int
}

// callbackQueue is a keyed, ordered callback queue. Re-enqueuing under an
// existing key replaces the callback but keeps the oldest position, so a
// slot that churns within one frame still runs exactly once, in original
// order.
type callbackQueue struct {
	order   []hookKey
	entries map[hookKey]func()
}

// put inserts or replaces the callback for key.
func (q *callbackQueue) put(key hookKey, cb func()) {
	if q.entries == nil {
		q.entries = make(map[hookKey]func())
	}
	if _, ok := q.entries[key]; !ok {
		q.order = append(q.order, key)
	}
	q.entries[key] = cb
}

// drain resets the queue and returns the callbacks in enqueue order.
// Resetting before iteration means callbacks that enqueue further work
// land in the next drain, never the one in progress.
func (q *callbackQueue) drain() []func() {
	if len(q.order) == 0 {
		return nil
	}
	out := make([]func(), 0, len(q.order))
	for _, key := range q.order {
		out = append(out, q.entries[key])
	}
	q.order = nil
	q.entries = nil
	return out
}

// size returns the number of queued callbacks.
func (q *callbackQueue) size() int {
	return len(q.order)
}
