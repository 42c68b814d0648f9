package loom

import (
	"fmt"
	"reflect"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/vtree"
)

// renderComponent runs the instance's render function and returns its
// current element.
//
// The instance is excluded from the flush pass in progress, so an update
// enqueued as a direct consequence of this render cannot re-enter it. If
// the render function panics, the fault is reported and the previous
// output is reused unchanged. If the new raw output is reference-identical
// to the previous one and the instance is already mounted, the previously
// built element is returned and nothing is allocated.
func (s *Scheduler) renderComponent(in *Instance) *vtree.Element {
	if in.tornDown {
		errors.Report(errors.New("E005").WithComponent(in.name))
		return in.element
	}

	s.excluded[in.id] = struct{}{}
	in.resetCursors()

	prev := setCurrent(in)
	out, err := in.invokeRender()
	setCurrent(prev)
	in.endRender()

	s.metrics.IncRender()
	if err != nil {
		s.metrics.IncRenderError()
		s.logger.Error("render failed", "component", in.name, "error", err)
		errors.Report(errors.New("E001").WithComponent(in.name).Wrap(err))
		if in.mounted {
			// The element must survive a throwing re-render untouched;
			// routing stale value-typed output through the identity check
			// below would rebuild it.
			return in.element
		}
		out = in.rendered
	}

	if in.mounted && sameRenderOutput(out, in.rendered) {
		in.rendered = out
		return in.element
	}

	el := &vtree.Element{
		Kind:     vtree.KindComponent,
		Owner:    in,
		Props:    in.props,
		Children: buildChildren([]any{out}),
	}
	in.rendered = out
	in.element = el
	return el
}

// invokeRender calls the render function under fault isolation.
func (in *Instance) invokeRender() (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return in.fn(in.props), nil
}

// sameRenderOutput reports whether two raw render outputs are
// reference-identical. Elements compare by pointer, sequences by data
// pointer and length; value outputs are never identical, which forces a
// rebuild for value-equal but reference-distinct results.
func sameRenderOutput(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}
