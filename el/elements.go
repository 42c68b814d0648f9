package el

import (
	"github.com/loom-ui/loom/pkg/loom"
	"github.com/loom-ui/loom/pkg/vtree"
)

// newTag splits mixed arguments into props and children. Props and Attr
// values merge into the element's props in argument order; everything
// else becomes a child and follows the same normalization as loom.H.
func newTag(tag string, args ...any) *Element {
	var props vtree.Props
	children := make([]any, 0, len(args))

	for _, arg := range args {
		if p, ok := arg.(vtree.Props); ok {
			if props == nil {
				props = vtree.Props{}
			}
			for k, v := range p {
				props[k] = v
			}
			continue
		}
		children = append(children, arg)
	}

	return loom.H(tag, props, children...)
}

// Document structure.

func Header(args ...any) *Element  { return newTag("header", args...) }
func Footer(args ...any) *Element  { return newTag("footer", args...) }
func Main(args ...any) *Element    { return newTag("main", args...) }
func Nav(args ...any) *Element     { return newTag("nav", args...) }
func Section(args ...any) *Element { return newTag("section", args...) }
func Article(args ...any) *Element { return newTag("article", args...) }
func Aside(args ...any) *Element   { return newTag("aside", args...) }

// Headings.

func H1(args ...any) *Element { return newTag("h1", args...) }
func H2(args ...any) *Element { return newTag("h2", args...) }
func H3(args ...any) *Element { return newTag("h3", args...) }
func H4(args ...any) *Element { return newTag("h4", args...) }
func H5(args ...any) *Element { return newTag("h5", args...) }
func H6(args ...any) *Element { return newTag("h6", args...) }

// Grouping content.

func Div(args ...any) *Element        { return newTag("div", args...) }
func P(args ...any) *Element          { return newTag("p", args...) }
func Span(args ...any) *Element       { return newTag("span", args...) }
func Pre(args ...any) *Element        { return newTag("pre", args...) }
func Code(args ...any) *Element       { return newTag("code", args...) }
func Blockquote(args ...any) *Element { return newTag("blockquote", args...) }
func Hr(args ...any) *Element         { return newTag("hr", args...) }
func Br(args ...any) *Element         { return newTag("br", args...) }

// Lists.

func Ul(args ...any) *Element { return newTag("ul", args...) }
func Ol(args ...any) *Element { return newTag("ol", args...) }
func Li(args ...any) *Element { return newTag("li", args...) }
func Dl(args ...any) *Element { return newTag("dl", args...) }
func Dt(args ...any) *Element { return newTag("dt", args...) }
func Dd(args ...any) *Element { return newTag("dd", args...) }

// Inline text.

func A(args ...any) *Element      { return newTag("a", args...) }
func Strong(args ...any) *Element { return newTag("strong", args...) }
func Em(args ...any) *Element     { return newTag("em", args...) }
func Small(args ...any) *Element  { return newTag("small", args...) }
func Mark(args ...any) *Element   { return newTag("mark", args...) }

// Media.

func Img(args ...any) *Element    { return newTag("img", args...) }
func Video(args ...any) *Element  { return newTag("video", args...) }
func Audio(args ...any) *Element  { return newTag("audio", args...) }
func Canvas(args ...any) *Element { return newTag("canvas", args...) }

// Forms.

func Form(args ...any) *Element     { return newTag("form", args...) }
func Input(args ...any) *Element    { return newTag("input", args...) }
func Textarea(args ...any) *Element { return newTag("textarea", args...) }
func Button(args ...any) *Element   { return newTag("button", args...) }
func Select(args ...any) *Element   { return newTag("select", args...) }
func OptionEl(args ...any) *Element { return newTag("option", args...) }
func Label(args ...any) *Element    { return newTag("label", args...) }
func Fieldset(args ...any) *Element { return newTag("fieldset", args...) }
func Legend(args ...any) *Element   { return newTag("legend", args...) }

// Tables.

func Table(args ...any) *Element { return newTag("table", args...) }
func Thead(args ...any) *Element { return newTag("thead", args...) }
func Tbody(args ...any) *Element { return newTag("tbody", args...) }
func Tfoot(args ...any) *Element { return newTag("tfoot", args...) }
func Tr(args ...any) *Element    { return newTag("tr", args...) }
func Th(args ...any) *Element    { return newTag("th", args...) }
func Td(args ...any) *Element    { return newTag("td", args...) }
