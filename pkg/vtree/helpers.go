package vtree

import "fmt"

// NewText creates a text element.
func NewText(content string) *Element {
	return &Element{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text element.
func Textf(format string, args ...any) *Element {
	return NewText(fmt.Sprintf(format, args...))
}

// NewEmpty creates a placeholder element.
func NewEmpty() *Element {
	return &Element{Kind: KindEmpty}
}

// If returns the element if condition is true, nil otherwise.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Map maps a slice to elements, skipping nil results.
func Map[T any](items []T, fn func(item T, index int) *Element) []*Element {
	result := make([]*Element, 0, len(items))
	for i, item := range items {
		if el := fn(item, i); el != nil {
			result = append(result, el)
		}
	}
	return result
}
