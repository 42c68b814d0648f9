package loom

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/ltest"
	"github.com/loom-ui/loom/pkg/vtree"
)

func TestDebugModeDetectsHookOrderChange(t *testing.T) {
	DebugMode = true
	t.Cleanup(func() { DebugMode = false })

	p := &ltest.SyncPhaser{}
	s := New(p)
	reports := captureReports(t)

	var setter *State[int]
	first := true
	comp := func(props vtree.Props) any {
		if first {
			first = false
			_, st := UseState(0)
			setter = st
			UseRef(0)
		} else {
			UseRef(0)
			_, st := UseState(0)
			setter = st
		}
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})

	setter.Set(1)
	p.Flush()

	// The order violation panics mid-render and surfaces through render
	// fault isolation.
	if len(*reports) != 1 {
		t.Fatalf("reports = %v, want one entry", *reports)
	}
	e := (*reports)[0]
	if e.Code != "E001" {
		t.Errorf("report code = %q, want E001", e.Code)
	}
	if e.Unwrap() == nil || !strings.Contains(e.Unwrap().Error(), "hook order changed") {
		t.Errorf("wrapped error = %v, want hook order diagnostic", e.Unwrap())
	}
}

func TestDebugModeReportsHookShortfall(t *testing.T) {
	DebugMode = true
	t.Cleanup(func() { DebugMode = false })

	p := &ltest.SyncPhaser{}
	s := New(p)
	reports := captureReports(t)

	var setter *State[int]
	comp := func(props vtree.Props) any {
		v, st := UseState(0)
		setter = st
		if v == 0 {
			UseRef(0)
		}
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})

	setter.Set(1)
	p.Flush()

	found := false
	for _, e := range *reports {
		if e.Code == "E003" {
			found = true
		}
	}
	if !found {
		t.Errorf("no E003 report for hook shortfall, got %v", *reports)
	}
}

func TestSlotTypeMismatchIsolated(t *testing.T) {
	p := &ltest.SyncPhaser{}
	s := New(p)
	reports := captureReports(t)

	var setInt *State[int]
	first := true
	comp := func(props vtree.Props) any {
		if first {
			first = false
			_, st := UseState(0)
			setInt = st
		} else {
			UseState("wrong type at same slot")
		}
		return H("div", nil)
	}

	in := InstanceOf(H(comp, nil))
	s.Mount(in, func() {})

	setInt.Set(1)
	p.Flush()

	if len(*reports) != 1 {
		t.Fatalf("reports = %v, want one entry", *reports)
	}
	e := (*reports)[0]
	if e.Code != "E001" {
		t.Errorf("report code = %q, want E001", e.Code)
	}
	if e.Unwrap() == nil || !strings.Contains(e.Unwrap().Error(), "E003") {
		t.Errorf("wrapped error = %v, want slot type diagnostic", e.Unwrap())
	}
}

func TestHookKindString(t *testing.T) {
	tests := []struct {
		kind hookKind
		want string
	}{
		{hookState, "State"},
		{hookEffect, "Effect"},
		{hookLayoutEffect, "LayoutEffect"},
		{hookMemo, "Memo"},
		{hookRef, "Ref"},
		{hookKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("hookKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
