package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/loom-ui/loom/pkg/vtree"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation. Increases
	// output size; development use only.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer walks an element tree and writes HTML. Elements carrying event
// handler props are tagged with sequential hydration ids and the handlers
// are collected into a registry, so a live session can route client events
// back to the function that declared them.
type Renderer struct {
	config     Config
	hidCounter uint32
	handlers   map[string]any
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		handlers: make(map[string]any),
	}
}

// ToString renders an element tree to an HTML string.
func (r *Renderer) ToString(el *vtree.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, el); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams an element tree to the given writer.
func (r *Renderer) ToWriter(w io.Writer, el *vtree.Element) error {
	return r.renderElement(w, el, 0)
}

// Handlers returns the handler registry collected during rendering. Keys
// are "hid_eventname", e.g. "h1_onclick".
func (r *Renderer) Handlers() map[string]any {
	return r.handlers
}

// Reset clears the hydration id counter and handler registry for reuse.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// renderElement dispatches on element kind.
func (r *Renderer) renderElement(w io.Writer, el *vtree.Element, depth int) error {
	if el == nil {
		return nil
	}

	switch el.Kind {
	case vtree.KindEmpty:
		// Placeholder comment so the slot survives client-side patching.
		_, err := w.Write([]byte("<!---->"))
		return err
	case vtree.KindText:
		return r.renderText(w, el)
	case vtree.KindTag:
		return r.renderTag(w, el, depth)
	case vtree.KindComponent:
		return r.renderComponent(w, el, depth)
	case vtree.KindFragment:
		return r.renderChildren(w, el, depth)
	default:
		return fmt.Errorf("unknown element kind: %d", el.Kind)
	}
}

// renderText writes a text element with HTML escaping.
func (r *Renderer) renderText(w io.Writer, el *vtree.Element) error {
	_, err := w.Write([]byte(escapeHTML(el.Text)))
	return err
}

// liveOwner is satisfied by a component instance that can report its
// current rendered element.
type liveOwner interface {
	Element() *vtree.Element
}

// renderComponent writes a component's output without a wrapper element.
// A rebuilt element carries the output as children; an element handed out
// before its first render defers to the owning instance's live element.
func (r *Renderer) renderComponent(w io.Writer, el *vtree.Element, depth int) error {
	if len(el.Children) == 0 {
		if o, ok := el.Owner.(liveOwner); ok {
			if live := o.Element(); live != nil && live != el {
				return r.renderChildren(w, live, depth)
			}
		}
		return nil
	}
	return r.renderChildren(w, el, depth)
}

// renderChildren writes a container's children without a wrapper element.
func (r *Renderer) renderChildren(w io.Writer, el *vtree.Element, depth int) error {
	for _, child := range el.Children {
		if err := r.renderElement(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderTag writes an HTML element with its attributes and children.
func (r *Renderer) renderTag(w io.Writer, el *vtree.Element, depth int) error {
	tag := el.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, el); err != nil {
		return err
	}

	if hasEventHandlers(el) {
		hid := r.nextHID()
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
		r.registerHandlers(hid, el)
	}

	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if r.config.Pretty && len(el.Children) > 0 {
		w.Write([]byte{'\n'})
	}
	for _, child := range el.Children {
		if err := r.renderElement(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && len(el.Children) > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderAttributes writes all non-handler props as attributes in sorted
// key order for deterministic output.
func (r *Renderer) renderAttributes(w io.Writer, el *vtree.Element) error {
	if el.Props == nil {
		return nil
	}

	keys := make([]string, 0, len(el.Props))
	for key := range el.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := el.Props[key]

		// Internal and handler props are not attributes.
		if strings.HasPrefix(key, "_") || key == "key" || key == "children" {
			continue
		}
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			continue
		}

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		}

		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
				return err
			}
		}
	}

	return nil
}

// hasEventHandlers reports whether any prop is an event handler.
func hasEventHandlers(el *vtree.Element) bool {
	for key, value := range el.Props {
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			return true
		}
	}
	return false
}

// nextHID generates the next sequential hydration id.
func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}

// registerHandlers stores handler references under the given hydration id.
func (r *Renderer) registerHandlers(hid string, el *vtree.Element) {
	for key, value := range el.Props {
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			r.handlers[hid+"_"+key] = value
		}
	}
}

// isEventHandler returns true if the value is any function type.
func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case func(), func(any):
		return true
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to its string form.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
