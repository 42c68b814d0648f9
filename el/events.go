package el

// Event helpers pair a handler with its prop name. Handlers take no
// arguments or a single any carrying the event payload.

func OnClick(handler any) Attr {
	return Attr{"onclick": handler}
}

func OnDblClick(handler any) Attr {
	return Attr{"ondblclick": handler}
}

func OnInput(handler any) Attr {
	return Attr{"oninput": handler}
}

func OnChange(handler any) Attr {
	return Attr{"onchange": handler}
}

func OnSubmit(handler any) Attr {
	return Attr{"onsubmit": handler}
}

func OnFocus(handler any) Attr {
	return Attr{"onfocus": handler}
}

func OnBlur(handler any) Attr {
	return Attr{"onblur": handler}
}

func OnKeyDown(handler any) Attr {
	return Attr{"onkeydown": handler}
}

func OnKeyUp(handler any) Attr {
	return Attr{"onkeyup": handler}
}
