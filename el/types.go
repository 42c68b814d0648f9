package el

import "github.com/loom-ui/loom/pkg/vtree"

// Aliases for the tree primitives used by the DSL.
type Element = vtree.Element
type Props = vtree.Props

// Attr is a set of props contributed by one helper. Tag constructors
// merge every Attr argument into the element's props, later entries
// winning.
type Attr = vtree.Props
