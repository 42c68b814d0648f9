package vtree

// Kind is the element type discriminator.
type Kind uint8

const (
	KindEmpty     Kind = iota // Placeholder slot with no content
	KindText                  // Plain text
	KindTag                   // Named output node, e.g. "div"
	KindComponent             // Rendered component output
	KindFragment              // Grouping without a wrapper node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindTag:
		return "Tag"
	case KindComponent:
		return "Component"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Props holds element properties. The "key" entry, when present, carries
// reconciliation identity and is not a real output attribute.
type Props map[string]any

// Owner is the runtime record backing a component element. It is implemented
// by the runtime's component instance; vtree only needs its identity.
type Owner interface {
	// ID returns the instance's process-unique, monotonically increasing id.
	ID() uint64

	// Name returns the display name for diagnostics.
	Name() string

	// FuncID identifies the render function for change detection.
	FuncID() uintptr
}

// Element is one immutable-per-render node of the virtual tree.
// Once built, an element is structurally complete: children are fully
// resolved, recursively, to one of the five kinds.
type Element struct {
	Kind     Kind
	Text     string     // For KindText
	Tag      string     // For KindTag
	Props    Props      // For KindTag and KindComponent
	Children []*Element // For KindTag, KindComponent, KindFragment
	Owner    Owner      // For KindComponent
	Handle   any        // For KindEmpty: optional output-surface handle
}

// Key returns the element's reconciliation key, or nil if none is set.
func (e *Element) Key() any {
	if e == nil || e.Props == nil {
		return nil
	}
	return e.Props["key"]
}
