// Package vtree defines the virtual element tree shared by every part of
// the Loom runtime.
//
// An Element is an immutable-per-render description of one node in the
// tree, tagged over five kinds: Empty (placeholder slot), Text, Tag (named
// output node), Component (rendered component output), and Fragment
// (grouping). Elements are the common currency between the builder, the
// render executor, and the external patcher.
//
// # Change Detection
//
// HasElementChanged is the predicate the external patcher uses to decide
// whether to replace a node or recurse into it. The comparison is shallow
// by design: tag/text/key identity plus component render-function identity.
// Prop-level diffing belongs to the patcher, not this package.
//
// # Helpers
//
// NewText, Textf, NewEmpty, If, When, and Map cover the common construction
// patterns. Component and Tag elements are built through the runtime's
// element builder, which owns child flattening and instance allocation.
package vtree
