package vtree

import "reflect"

// HasElementChanged reports whether the patcher should replace the node at
// this tree position instead of recursing into it.
//
// The comparison is intentionally shallow: tags, text, keys, and component
// render-function identity. Non-key props are left to the patcher's own
// diff; two components with the same key and function do not count as
// changed here even if their other props differ.
func HasElementChanged(old, next *Element) bool {
	if old == nil && next == nil {
		return false
	}
	if old == nil || next == nil {
		return true
	}
	if old.Kind != next.Kind {
		return true
	}

	switch old.Kind {
	case KindText:
		return old.Text != next.Text
	case KindTag:
		return old.Tag != next.Tag || !ValueEqual(old.Key(), next.Key())
	case KindComponent:
		if !ValueEqual(old.Key(), next.Key()) {
			return true
		}
		if old.Owner == nil || next.Owner == nil {
			return old.Owner != next.Owner
		}
		return old.Owner.FuncID() != next.Owner.FuncID()
	default:
		// Empty and Fragment carry no identity of their own.
		return false
	}
}

// ValueEqual compares two prop or dependency values shallowly.
// Comparable values compare by ==; slices, maps, and funcs compare by
// identity; anything else is never equal.
func ValueEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	if b == nil {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		// Identity, not contents: a re-created value is a changed value.
		return va.Pointer() == vb.Pointer() && (va.Kind() != reflect.Slice || va.Len() == vb.Len())
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
