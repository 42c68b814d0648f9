package el

import (
	"fmt"
	"testing"

	"github.com/loom-ui/loom/pkg/vtree"
)

func TestTagConstructorSplitsArgs(t *testing.T) {
	handler := func() {}
	got := Div(
		ID("root"),
		Class("one", "two"),
		OnClick(handler),
		"hello",
		Span("child"),
	)

	if got.Kind != vtree.KindTag || got.Tag != "div" {
		t.Fatalf("Div() = kind %v tag %q, want tag div", got.Kind, got.Tag)
	}
	if got.Props["id"] != "root" {
		t.Errorf("id = %v, want root", got.Props["id"])
	}
	if got.Props["className"] != "one two" {
		t.Errorf("className = %v, want %q", got.Props["className"], "one two")
	}
	if got.Props["onclick"] == nil {
		t.Error("onclick handler not set")
	}
	if len(got.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(got.Children))
	}
	if got.Children[0].Kind != vtree.KindText || got.Children[0].Text != "hello" {
		t.Errorf("first child = %+v, want text hello", got.Children[0])
	}
	if got.Children[1].Tag != "span" {
		t.Errorf("second child tag = %q, want span", got.Children[1].Tag)
	}
}

func TestAttrMergeOrder(t *testing.T) {
	got := Div(Class("a"), Class("b"))
	if got.Props["className"] != "b" {
		t.Errorf("className = %v, want later Attr to win", got.Props["className"])
	}
}

func TestTagWithoutPropsHasNilProps(t *testing.T) {
	got := P("text only")
	if got.Props != nil {
		t.Errorf("Props = %v, want nil when no attrs given", got.Props)
	}
}

func TestAttributeHelpers(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want Attr
	}{
		{"ID", ID("main"), Attr{"id": "main"}},
		{"Class", Class("a", "b"), Attr{"className": "a b"}},
		{"Data", Data("count", "3"), Attr{"data-count": "3"}},
		{"Key", Key("row-1"), Attr{"key": "row-1"}},
		{"For", For("email"), Attr{"htmlFor": "email"}},
		{"Disabled", Disabled(true), Attr{"disabled": true}},
		{"AriaHidden", AriaHidden(true), Attr{"aria-hidden": true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.got) != len(tc.want) {
				t.Fatalf("got %v, want %v", tc.got, tc.want)
			}
			for k, v := range tc.want {
				if tc.got[k] != v {
					t.Errorf("got[%q] = %v, want %v", k, tc.got[k], v)
				}
			}
		})
	}
}

func TestEventHelpers(t *testing.T) {
	fn := func() {}
	cases := []struct {
		name string
		got  Attr
		prop string
	}{
		{"OnClick", OnClick(fn), "onclick"},
		{"OnInput", OnInput(fn), "oninput"},
		{"OnChange", OnChange(fn), "onchange"},
		{"OnSubmit", OnSubmit(fn), "onsubmit"},
		{"OnKeyDown", OnKeyDown(fn), "onkeydown"},
	}

	for _, tc := range cases {
		if tc.got[tc.prop] == nil {
			t.Errorf("%s: prop %q not set", tc.name, tc.prop)
		}
	}
}

func TestFragment(t *testing.T) {
	got := Fragment("a", Span("b"))
	if got.Kind != vtree.KindFragment {
		t.Fatalf("kind = %v, want fragment", got.Kind)
	}
	if len(got.Children) != 2 {
		t.Errorf("children = %d, want 2", len(got.Children))
	}
}

func TestConditionalHelpers(t *testing.T) {
	node := Text("ok")

	if If(true, node) != node {
		t.Error("If(true) should return node")
	}
	if If(false, node) != nil {
		t.Error("If(false) should return nil")
	}

	calls := 0
	if When(false, func() *Element { calls++; return node }) != nil || calls != 0 {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *Element { calls++; return node }) != node || calls != 1 {
		t.Error("When(true) should call fn once")
	}
}

func TestRangeHelper(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := Range(items, func(item string, index int) *Element {
		return Textf("%s:%d", item, index)
	})
	if len(got) != len(items) {
		t.Fatalf("Range() length = %d, want %d", len(got), len(items))
	}
	for i, node := range got {
		want := fmt.Sprintf("%s:%d", items[i], i)
		if node.Kind != vtree.KindText || node.Text != want {
			t.Errorf("Range() node %d = %+v, want text %q", i, node, want)
		}
	}
}

func TestRepeatHelper(t *testing.T) {
	got := Repeat(3, func(i int) *Element {
		return Li(Textf("item-%d", i))
	})
	if len(got) != 3 {
		t.Fatalf("Repeat() length = %d, want 3", len(got))
	}
	for i, node := range got {
		if node.Tag != "li" {
			t.Errorf("Repeat() node %d tag = %q, want li", i, node.Tag)
		}
	}
}

func TestNothing(t *testing.T) {
	if Nothing().Kind != vtree.KindEmpty {
		t.Error("Nothing() should be an empty placeholder")
	}
}
