package loom

import (
	"fmt"
	"testing"

	"github.com/loom-ui/loom/pkg/ltest"
	"github.com/loom-ui/loom/pkg/vtree"
)

func TestEffectRunsDeferred(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var log []string
	comp := func(props vtree.Props) any {
		UseEffect(func() Cleanup {
			log = append(log, "effect")
			return nil
		}, Deps{})
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})

	if len(log) != 0 {
		t.Fatalf("effect ran during mount: %v", log)
	}
	p.Flush()
	if len(log) != 1 || log[0] != "effect" {
		t.Errorf("log = %v, want [effect]", log)
	}
}

func TestEffectDepLifecycle(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	var log []string
	comp := func(props vtree.Props) any {
		v, st := UseState(0)
		setter = st
		UseEffect(func() Cleanup {
			captured := v
			log = append(log, fmt.Sprintf("effect %d", captured))
			return func() { log = append(log, fmt.Sprintf("cleanup %d", captured)) }
		}, Deps{v})
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	p.Flush() // effect 0

	setter.Set(1)
	p.Flush() // re-render enqueues cleanup+effect for the next frame
	p.Flush() // cleanup 0, effect 1

	want := []string{"effect 0", "cleanup 0", "effect 1"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestEffectUnchangedDepsSkipped(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	effectRuns := 0
	comp := func(props vtree.Props) any {
		_, st := UseState(0)
		setter = st
		UseEffect(func() Cleanup {
			effectRuns++
			return nil
		}, Deps{"constant"})
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	p.Flush()

	setter.Set(1)
	p.Flush()
	p.Flush()

	if effectRuns != 1 {
		t.Errorf("effect ran %d times, want 1", effectRuns)
	}
}

func TestEffectNilDepsAlwaysRun(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	effectRuns := 0
	comp := func(props vtree.Props) any {
		_, st := UseState(0)
		setter = st
		UseEffect(func() Cleanup {
			effectRuns++
			return nil
		}, nil)
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	p.Flush()

	setter.Set(1)
	p.Flush()
	p.Flush()

	if effectRuns != 2 {
		t.Errorf("effect ran %d times, want 2", effectRuns)
	}
}

func TestLayoutEffectRunsSameFrame(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	var log []string
	comp := func(props vtree.Props) any {
		v, st := UseState(0)
		setter = st
		UseEffect(func() Cleanup {
			log = append(log, fmt.Sprintf("effect %d", v))
			return nil
		}, Deps{v})
		UseLayoutEffect(func() Cleanup {
			log = append(log, fmt.Sprintf("layout %d", v))
			return nil
		}, Deps{v})
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	p.Flush() // effect 0 in read phase, layout 0 in write phase

	setter.Set(1)
	log = nil
	p.Flush()

	// The layout effect from this frame's render flushes inside the same
	// frame; the ordinary effect waits for the next read phase.
	if len(log) != 1 || log[0] != "layout 1" {
		t.Fatalf("same-frame log = %v, want [layout 1]", log)
	}
	p.Flush()
	if len(log) != 2 || log[1] != "effect 1" {
		t.Errorf("log = %v, want [layout 1, effect 1]", log)
	}
}

func TestLayoutCleanupBeforeLayoutEffect(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	var log []string
	comp := func(props vtree.Props) any {
		v, st := UseState(0)
		setter = st
		UseLayoutEffect(func() Cleanup {
			captured := v
			log = append(log, fmt.Sprintf("layout %d", captured))
			return func() { log = append(log, fmt.Sprintf("release %d", captured)) }
		}, Deps{v})
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	p.Flush() // layout 0

	setter.Set(1)
	p.Flush() // release 0, layout 1 inside the same write phase

	want := []string{"layout 0", "release 0", "layout 1"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestEffectSkippedAfterTeardown(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	effectRuns := 0
	comp := func(props vtree.Props) any {
		UseEffect(func() Cleanup {
			effectRuns++
			return nil
		}, Deps{})
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})

	// Unmount lands between the enqueue at render time and the flush.
	s.Unmount(in)
	p.Flush()

	if effectRuns != 0 {
		t.Errorf("effect ran %d times on a torn-down instance, want 0", effectRuns)
	}
}
