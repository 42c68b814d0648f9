package frame

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval approximates a 60Hz display.
const DefaultInterval = 16 * time.Millisecond

// Loop is a ticker-driven frame loop. All queued callbacks run on the loop
// goroutine, one frame per tick: dispatched tasks first, then the measure
// queue, then the mutation queue. Mutations requested during a measure
// callback run in the same tick.
type Loop struct {
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	tasks     []func()
	measures  []func()
	mutations []func()

	stop    chan struct{}
	done    chan struct{}
	running bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithInterval sets the frame interval.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLogger sets the logger used for recovered callback panics.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop creates a frame loop. It does not start ticking until Start.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		interval: DefaultInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestMeasure implements Phaser.
func (l *Loop) RequestMeasure(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.measures = append(l.measures, fn)
	l.mu.Unlock()
}

// RequestMutation implements Phaser.
func (l *Loop) RequestMutation(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.mutations = append(l.mutations, fn)
	l.mu.Unlock()
}

// Dispatch queues fn to run on the loop goroutine at the start of the next
// frame, before any phase work. This is the only safe way to reach runtime
// state from another goroutine.
func (l *Loop) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
}

// Start begins ticking in a new goroutine. Starting a running loop is a
// no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	stop, done := l.stop, l.done
	l.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				l.Tick()
			}
		}
	}()
}

// Stop halts the loop and waits for the current frame to finish.
// Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	stop, done := l.stop, l.done
	l.mu.Unlock()

	close(stop)
	<-done
}

// Tick runs exactly one frame: tasks, then measures, then mutations.
// Each queue is swapped out before draining, so callbacks that queue
// further work land in the next frame, except mutations requested during
// this tick's measures, which run at the end of the same tick.
func (l *Loop) Tick() {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	measures := l.measures
	l.measures = nil
	l.mu.Unlock()

	for _, fn := range tasks {
		l.runSafe(fn, "task")
	}
	for _, fn := range measures {
		l.runSafe(fn, "measure")
	}

	// Mutations are swapped after measures so that write work requested
	// during the read phase runs in this frame.
	l.mu.Lock()
	mutations := l.mutations
	l.mutations = nil
	l.mu.Unlock()

	for _, fn := range mutations {
		l.runSafe(fn, "mutation")
	}
}

func (l *Loop) runSafe(fn func(), phase string) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("frame callback panicked", "phase", phase, "panic", r)
		}
	}()
	fn()
}
