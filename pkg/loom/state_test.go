package loom

import (
	"fmt"
	"testing"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/ltest"
	"github.com/loom-ui/loom/pkg/vtree"
)

func TestUseStateOutsideRenderPanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*errors.Error)
		if !ok || e.Code != "E002" {
			t.Errorf("panic = %v, want *errors.Error with code E002", r)
		}
	}()
	UseState(0)
}

func TestStateStagingAndFrameApply(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	renders := 0
	comp := func(props vtree.Props) any {
		renders++
		v, st := UseState(0)
		setter = st
		return H("span", nil, fmt.Sprint(v))
	}

	in := InstanceOf(H(comp, nil))
	updates := 0
	s.Mount(in, func() { updates++ })

	if renders != 1 {
		t.Fatalf("renders after mount = %d, want 1", renders)
	}

	// Writes stage; nothing is visible and nothing renders until the frame.
	setter.Set(1)
	setter.Set(2)
	if got := setter.Get(); got != 0 {
		t.Errorf("Get() before frame = %d, want 0", got)
	}
	if renders != 1 {
		t.Errorf("renders before frame = %d, want 1", renders)
	}

	p.Flush()

	// Coalesced: one render, last write wins, patcher notified once.
	if renders != 2 {
		t.Errorf("renders after frame = %d, want 2", renders)
	}
	if got := setter.Get(); got != 2 {
		t.Errorf("Get() after frame = %d, want 2", got)
	}
	if updates != 1 {
		t.Errorf("updates = %d, want 1", updates)
	}
	ltest.ExpectContains(t, in.Element(), "2")
}

func TestStateUpdateComposesOverStaged(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	comp := func(props vtree.Props) any {
		_, st := UseState(10)
		setter = st
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})

	// Update reads the staged value when one is pending, the live value
	// otherwise.
	setter.Update(func(v int) int { return v + 1 })
	setter.Update(func(v int) int { return v * 2 })
	p.Flush()

	if got := setter.Get(); got != 22 {
		t.Errorf("Get() = %d, want 22", got)
	}
}

func TestStateHandleStableAcrossRenders(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var handles []*State[int]
	comp := func(props vtree.Props) any {
		_, st := UseState(0)
		handles = append(handles, st)
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	handles[0].Set(1)
	p.Flush()

	if len(handles) != 2 {
		t.Fatalf("renders = %d, want 2", len(handles))
	}
	if handles[0] != handles[1] {
		t.Error("setter handle changed between renders")
	}
}

func TestStateSlotsArePositional(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setA *State[int]
	var gotA, gotB int
	comp := func(props vtree.Props) any {
		a, stA := UseState(1)
		b, _ := UseState(100)
		setA = stA
		gotA, gotB = a, b
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	setA.Set(5)
	p.Flush()

	if gotA != 5 || gotB != 100 {
		t.Errorf("slots = (%d, %d), want (5, 100)", gotA, gotB)
	}
}

func TestStateSetAfterUnmountIsInert(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)

	var setter *State[int]
	comp := func(props vtree.Props) any {
		_, st := UseState(0)
		setter = st
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})
	s.Unmount(in)

	setter.Set(7)
	if s.HasPendingWork() {
		t.Error("setter on torn-down instance scheduled work")
	}
}
