package loom

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vtree"
)

// fragMarker is the fragment source for H.
type fragMarker struct{}

// Frag groups children without a wrapper node: H(Frag, nil, kids...).
var Frag fragMarker

// H builds one element from a source (a string tag, a render function, or
// Frag) plus props and a flattened child list.
//
// Child handling: slice arguments are spliced one level; interior nil and
// false values become Empty placeholders so positional slots survive for
// reconciliation; trailing placeholders are dropped; a fully-empty child
// list collapses to exactly one Empty. Anything that is not an element or
// a placeholder is coerced to a Text element.
//
// A render-function source always allocates a fresh Instance; identity
// across re-renders is the caller's reuse policy, not the builder's. The
// instance's element has its children resolved by its first render.
func H(source any, props vtree.Props, children ...any) *vtree.Element {
	kids := buildChildren(children)

	switch src := source.(type) {
	case string:
		return &vtree.Element{
			Kind:     vtree.KindTag,
			Tag:      src,
			Props:    props,
			Children: kids,
		}

	case fragMarker:
		return &vtree.Element{
			Kind:     vtree.KindFragment,
			Children: kids,
		}

	case RenderFunc:
		return componentElement(src, props, children)

	case func(vtree.Props) any:
		return componentElement(RenderFunc(src), props, children)

	default:
		panic(fmt.Sprintf("loom: unsupported element source %T", source))
	}
}

// List builds the bare-sequence form of a child list, with the same
// flattening, placeholder, and coercion rules as H.
func List(children ...any) []*vtree.Element {
	return buildChildren(children)
}

// InstanceOf returns the instance behind a component element, or nil for
// any other element.
func InstanceOf(el *vtree.Element) *Instance {
	if el == nil || el.Kind != vtree.KindComponent {
		return nil
	}
	in, _ := el.Owner.(*Instance)
	return in
}

// componentElement allocates an instance and its not-yet-rendered element.
func componentElement(fn RenderFunc, props vtree.Props, children []any) *vtree.Element {
	merged := make(vtree.Props, len(props)+1)
	for k, v := range props {
		merged[k] = v
	}

	// The children prop is absent for zero children, a bare element for
	// exactly one, and a sequence otherwise.
	switch kids := buildChildrenRaw(children); len(kids) {
	case 0:
	case 1:
		merged["children"] = kids[0]
	default:
		merged["children"] = kids
	}

	in := newInstance(fn, merged)
	el := &vtree.Element{
		Kind:  vtree.KindComponent,
		Owner: in,
		Props: merged,
	}
	in.element = el
	return el
}

// buildChildren normalizes a child list, collapsing a fully-empty result
// to a single Empty placeholder.
func buildChildren(children []any) []*vtree.Element {
	kids := buildChildrenRaw(children)
	if len(kids) == 0 {
		return []*vtree.Element{vtree.NewEmpty()}
	}
	return kids
}

// buildChildrenRaw flattens and coerces without the empty-list collapse.
func buildChildrenRaw(children []any) []*vtree.Element {
	flat := flatten(children)

	// Drop trailing placeholders only; interior ones keep their slot.
	for len(flat) > 0 && isPlaceholder(flat[len(flat)-1]) {
		flat = flat[:len(flat)-1]
	}

	kids := make([]*vtree.Element, 0, len(flat))
	for _, child := range flat {
		kids = append(kids, coerceChild(child))
	}
	return kids
}

// flatten splices slice arguments one level deep.
func flatten(children []any) []any {
	flat := make([]any, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case []any:
			flat = append(flat, v...)
		case []*vtree.Element:
			for _, el := range v {
				flat = append(flat, el)
			}
		default:
			flat = append(flat, child)
		}
	}
	return flat
}

// isPlaceholder reports whether a child value holds a positional slot
// without content.
func isPlaceholder(child any) bool {
	if child == nil {
		return true
	}
	if b, ok := child.(bool); ok {
		return !b
	}
	if el, ok := child.(*vtree.Element); ok {
		return el == nil
	}
	return false
}

// coerceChild turns one flattened child into an element.
func coerceChild(child any) *vtree.Element {
	if isPlaceholder(child) {
		return vtree.NewEmpty()
	}
	switch v := child.(type) {
	case *vtree.Element:
		return v
	case string:
		return vtree.NewText(v)
	default:
		return vtree.NewText(fmt.Sprint(v))
	}
}
