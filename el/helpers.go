package el

import (
	"github.com/loom-ui/loom/pkg/loom"
	"github.com/loom-ui/loom/pkg/vtree"
)

// Text creates a text element.
func Text(content string) *Element {
	return vtree.NewText(content)
}

// Textf creates a formatted text element.
func Textf(format string, args ...any) *Element {
	return vtree.Textf(format, args...)
}

// Fragment groups children without a wrapper node.
func Fragment(children ...any) *Element {
	return loom.H(loom.Frag, nil, children...)
}

// Nothing renders as an empty placeholder.
func Nothing() *Element {
	return vtree.NewEmpty()
}

// If returns the element when condition is true, nil otherwise.
func If(condition bool, element *Element) *Element {
	return vtree.If(condition, element)
}

// When is like If with lazy evaluation.
func When(condition bool, fn func() *Element) *Element {
	return vtree.When(condition, fn)
}

// Range maps a slice to elements, skipping nil results.
func Range[T any](items []T, fn func(item T, index int) *Element) []*Element {
	return vtree.Map(items, fn)
}

// Repeat builds n elements from an index function.
func Repeat(n int, fn func(i int) *Element) []*Element {
	result := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		if el := fn(i); el != nil {
			result = append(result, el)
		}
	}
	return result
}
