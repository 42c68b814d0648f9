package vtree

import "testing"

// fakeOwner implements Owner for change-detection tests.
type fakeOwner struct {
	id   uint64
	name string
	fn   uintptr
}

func (f *fakeOwner) ID() uint64      { return f.id }
func (f *fakeOwner) Name() string    { return f.name }
func (f *fakeOwner) FuncID() uintptr { return f.fn }

func TestHasElementChanged(t *testing.T) {
	ownerA := &fakeOwner{id: 1, name: "A", fn: 0x100}
	ownerA2 := &fakeOwner{id: 2, name: "A", fn: 0x100}
	ownerB := &fakeOwner{id: 3, name: "B", fn: 0x200}

	tests := []struct {
		name string
		old  *Element
		next *Element
		want bool
	}{
		{"both nil", nil, nil, false},
		{"old nil", nil, NewText("x"), true},
		{"next nil", NewText("x"), nil, true},
		{"kind mismatch", NewText("x"), NewEmpty(), true},
		{"same text", NewText("x"), NewText("x"), false},
		{"text changed", NewText("x"), NewText("y"), true},
		{
			"same tag",
			&Element{Kind: KindTag, Tag: "div"},
			&Element{Kind: KindTag, Tag: "div"},
			false,
		},
		{
			"tag changed",
			&Element{Kind: KindTag, Tag: "div"},
			&Element{Kind: KindTag, Tag: "span"},
			true,
		},
		{
			"tag key changed",
			&Element{Kind: KindTag, Tag: "li", Props: Props{"key": "a"}},
			&Element{Kind: KindTag, Tag: "li", Props: Props{"key": "b"}},
			true,
		},
		{
			"tag other props ignored",
			&Element{Kind: KindTag, Tag: "div", Props: Props{"class": "a"}},
			&Element{Kind: KindTag, Tag: "div", Props: Props{"class": "b"}},
			false,
		},
		{
			"same component function, different instances",
			&Element{Kind: KindComponent, Owner: ownerA},
			&Element{Kind: KindComponent, Owner: ownerA2},
			false,
		},
		{
			"different component function",
			&Element{Kind: KindComponent, Owner: ownerA},
			&Element{Kind: KindComponent, Owner: ownerB},
			true,
		},
		{
			"component key changed",
			&Element{Kind: KindComponent, Owner: ownerA, Props: Props{"key": 1}},
			&Element{Kind: KindComponent, Owner: ownerA2, Props: Props{"key": 2}},
			true,
		},
		{
			"component other props ignored",
			&Element{Kind: KindComponent, Owner: ownerA, Props: Props{"label": "a"}},
			&Element{Kind: KindComponent, Owner: ownerA2, Props: Props{"label": "b"}},
			false,
		},
		{"fragments never change", &Element{Kind: KindFragment}, &Element{Kind: KindFragment}, false},
		{"empties never change", NewEmpty(), NewEmpty(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasElementChanged(tt.old, tt.next); got != tt.want {
				t.Errorf("HasElementChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	sliceA := []int{1, 2}
	fn := func() {}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil value", nil, 1, false},
		{"value nil", 1, nil, false},
		{"equal strings", "a", "a", true},
		{"unequal strings", "a", "b", false},
		{"equal ints", 3, 3, true},
		{"int vs int64", 3, int64(3), false},
		{"equal floats", 1.5, 1.5, true},
		{"equal bools", true, true, true},
		{"same slice identity", sliceA, sliceA, true},
		{"distinct slices, same contents", []int{1, 2}, []int{1, 2}, false},
		{"same func identity", fn, fn, true},
		{"comparable struct", struct{ X int }{1}, struct{ X int }{1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ValueEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
