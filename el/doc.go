// Package el provides the UI DSL for loom.
//
// Tag constructors accept a mix of Props, Attr helpers, and children in
// any order:
//
//	import (
//	    "github.com/loom-ui/loom/pkg/loom"
//	    . "github.com/loom-ui/loom/el"
//	)
//
//	func view(props Props) any {
//	    count, setCount := loom.UseState(0)
//	    return Div(Class("counter"),
//	        Button(OnClick(func() { setCount.Set(count + 1) }),
//	            Textf("clicked %d times", count)),
//	    )
//	}
//
// The constructors are thin wrappers over loom.H, so child normalization
// (strings, numbers, nested slices, nil placeholders) is identical.
package el
