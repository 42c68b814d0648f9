package vtree

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "Empty"},
		{KindText, "Text"},
		{KindTag, "Tag"},
		{KindComponent, "Component"},
		{KindFragment, "Fragment"},
		{Kind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementKey(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want any
	}{
		{"nil element", nil, nil},
		{"nil props", &Element{Kind: KindTag, Tag: "div"}, nil},
		{"no key", &Element{Kind: KindTag, Tag: "div", Props: Props{"class": "x"}}, nil},
		{"string key", &Element{Kind: KindTag, Tag: "li", Props: Props{"key": "a"}}, "a"},
		{"int key", &Element{Kind: KindTag, Tag: "li", Props: Props{"key": 3}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Key(); got != tt.want {
				t.Errorf("Key() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextf(t *testing.T) {
	el := Textf("count: %d", 7)
	if el.Kind != KindText {
		t.Fatalf("Textf kind = %v, want Text", el.Kind)
	}
	if el.Text != "count: 7" {
		t.Errorf("Textf text = %q, want %q", el.Text, "count: 7")
	}
}

func TestIfWhen(t *testing.T) {
	el := NewText("x")

	if If(true, el) != el {
		t.Error("If(true) should return the element")
	}
	if If(false, el) != nil {
		t.Error("If(false) should return nil")
	}

	called := false
	got := When(false, func() *Element {
		called = true
		return el
	})
	if got != nil || called {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *Element { return el }) != el {
		t.Error("When(true) should return fn result")
	}
}

func TestMapSkipsNil(t *testing.T) {
	items := []int{1, 2, 3, 4}
	els := Map(items, func(n, _ int) *Element {
		if n%2 == 0 {
			return nil
		}
		return Textf("%d", n)
	})
	if len(els) != 2 {
		t.Fatalf("Map returned %d elements, want 2", len(els))
	}
	if els[0].Text != "1" || els[1].Text != "3" {
		t.Errorf("Map kept wrong elements: %q, %q", els[0].Text, els[1].Text)
	}
}
