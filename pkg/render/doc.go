// Package render converts element trees to HTML.
//
// # Overview
//
// The renderer walks a vtree.Element and writes HTML to a string or an
// io.Writer. Text content and attribute values are escaped; props whose
// key starts with "on" and whose value is a function are treated as event
// handlers: they are skipped as attributes, the element is tagged with a
// sequential data-hid attribute, and the handler is collected into a
// registry keyed "hid_eventname" for a live session to dispatch against.
//
// # Output shape
//
// Empty elements render as a placeholder comment so their positional slot
// survives client-side patching. Fragments and components render their
// children with no wrapper. Void elements close without a closing tag.
// Attributes render in sorted key order, so output is deterministic.
package render
