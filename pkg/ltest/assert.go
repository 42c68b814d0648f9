package ltest

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vtree"
)

// RenderToString renders an element and returns the HTML string.
//
// Example:
//
//	sched.Mount(in, nil)
//	html := ltest.RenderToString(in.Element())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(el *vtree.Element) string {
	r := render.New(render.Config{})
	html, err := r.ToString(el)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, el *vtree.Element, expected string) {
	t.Helper()
	html := RenderToString(el)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, el *vtree.Element, unexpected string) {
	t.Helper()
	html := RenderToString(el)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t *testing.T, el *vtree.Element, tag string) {
	t.Helper()
	html := RenderToString(el)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t *testing.T, el *vtree.Element, attr, value string) {
	t.Helper()
	html := RenderToString(el)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
