package loom

import (
	"log/slog"
	"sort"
	"time"

	"github.com/loom-ui/loom/pkg/frame"
	"github.com/loom-ui/loom/pkg/metrics"
)

// Scheduler collects instances needing update and pending effect work,
// and flushes both through a fixed pipeline once per display frame:
//
//  1. ordinary effect cleanups (previous frame's superseded effects)
//  2. ordinary effects
//  3. external read-phase work (outside this package)
//  4. staged state apply for every pending instance
//  5. forced updates in ascending instance id, skipping ids excluded
//     during this same pass
//  6. layout-effect cleanups
//  7. layout effects, synchronously at the end of the same write phase
//
// All scheduler state is mutated only from the cooperative frame thread;
// there is no locking, and every queue is swapped for a fresh one before
// draining.
type Scheduler struct {
	phaser  frame.Phaser
	logger  *slog.Logger
	metrics *metrics.Runtime

	pending  map[uint64]*Instance
	excluded map[uint64]struct{}

	effects        callbackQueue
	effectCleanups callbackQueue
	layouts        callbackQueue
	layoutCleanups callbackQueue

	flushQueued bool

	frameStart time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger for render and cleanup faults.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches runtime metrics.
func WithMetrics(m *metrics.Runtime) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// New creates a scheduler driven by the given frame phaser.
func New(phaser frame.Phaser, opts ...Option) *Scheduler {
	s := &Scheduler{
		phaser:   phaser,
		logger:   slog.Default(),
		pending:  make(map[uint64]*Instance),
		excluded: make(map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnqueueUpdate marks an instance for re-render on the next frame.
// Enqueuing is deduplicated by instance id, and repeated enqueues within
// one frame coalesce into a single flush request.
func (s *Scheduler) EnqueueUpdate(in *Instance) {
	if in == nil || in.tornDown {
		return
	}
	if _, ok := s.pending[in.id]; !ok {
		s.pending[in.id] = in
		s.metrics.SetPending(len(s.pending))
	}
	s.requestFlush()
}

// HasPendingWork reports whether anything is waiting for the next flush.
func (s *Scheduler) HasPendingWork() bool {
	return len(s.pending) > 0 ||
		s.effects.size() > 0 || s.effectCleanups.size() > 0 ||
		s.layouts.size() > 0 || s.layoutCleanups.size() > 0
}

// enqueueEffect queues an effect callback under its hook key.
func (s *Scheduler) enqueueEffect(layout bool, key hookKey, cb func()) {
	if layout {
		s.layouts.put(key, cb)
	} else {
		s.effects.put(key, cb)
	}
	s.requestFlush()
}

// enqueueCleanup queues a superseded effect's cleanup under its hook key.
func (s *Scheduler) enqueueCleanup(layout bool, key hookKey, cb Cleanup) {
	if layout {
		s.layoutCleanups.put(key, cb)
	} else {
		s.effectCleanups.put(key, cb)
	}
	s.requestFlush()
}

// requestFlush schedules at most one read-phase callback per frame.
func (s *Scheduler) requestFlush() {
	if s.flushQueued || s.phaser == nil {
		return
	}
	s.flushQueued = true
	s.phaser.RequestMeasure(s.readPhase)
}

// readPhase is the frame's read-phase entry: superseded cleanups, then
// ordinary effects, then a synchronous request for the write phase of the
// same frame.
func (s *Scheduler) readPhase() {
	s.flushQueued = false
	s.frameStart = time.Now()

	for _, fn := range s.effectCleanups.drain() {
		s.runSafe(fn, "effect cleanup")
	}
	for _, fn := range s.effects.drain() {
		s.metrics.IncEffect()
		s.runSafe(fn, "effect")
	}

	s.phaser.RequestMutation(s.writePhase)
}

// writePhase applies staged state for every pending instance, forces
// updates in ascending id order (creation order approximates
// parent-before-child, letting a parent's render exclude children it
// regenerated), then flushes layout work synchronously.
func (s *Scheduler) writePhase() {
	s.excluded = make(map[uint64]struct{})
	batch := s.takePending()

	for _, in := range batch {
		in.prepareForFrame()
	}
	for _, in := range batch {
		if _, skip := s.excluded[in.id]; skip {
			continue
		}
		s.forceUpdate(in)
	}

	for _, fn := range s.layoutCleanups.drain() {
		s.runSafe(fn, "layout cleanup")
	}
	for _, fn := range s.layouts.drain() {
		s.metrics.IncEffect()
		s.runSafe(fn, "layout effect")
	}
	s.metrics.ObserveFrame(time.Since(s.frameStart))
}

// takePending swaps the pending set for a fresh one and returns the old
// contents in ascending id order. Updates enqueued from here on land in
// the next frame.
func (s *Scheduler) takePending() []*Instance {
	if len(s.pending) == 0 {
		return nil
	}
	batch := make([]*Instance, 0, len(s.pending))
	for _, in := range s.pending {
		batch = append(batch, in)
	}
	s.pending = make(map[uint64]*Instance)
	s.metrics.SetPending(0)

	sort.Slice(batch, func(i, j int) bool {
		return batch[i].id < batch[j].id
	})
	return batch
}

// runSafe isolates one queued callback; a panic is logged and must not
// skip the rest of the flush.
func (s *Scheduler) runSafe(fn func(), what string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("flush callback panicked", "kind", what, "panic", r)
		}
	}()
	fn()
}
