package el

import "strings"

// ID sets the id attribute.
func ID(id string) Attr {
	return Attr{"id": id}
}

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr {
	return Attr{"className": strings.Join(classes, " ")}
}

// Style sets the inline style attribute.
func Style(style string) Attr {
	return Attr{"style": style}
}

// Data sets a data-* attribute.
func Data(key, value string) Attr {
	return Attr{"data-" + key: value}
}

// Key sets the reconciliation key.
func Key(key string) Attr {
	return Attr{"key": key}
}

// Href sets the href attribute.
func Href(url string) Attr {
	return Attr{"href": url}
}

// Src sets the src attribute.
func Src(url string) Attr {
	return Attr{"src": url}
}

// Alt sets the alt attribute.
func Alt(text string) Attr {
	return Attr{"alt": text}
}

// Title sets the title attribute.
func Title(text string) Attr {
	return Attr{"title": text}
}

// Type sets the type attribute.
func Type(t string) Attr {
	return Attr{"type": t}
}

// Name sets the name attribute.
func Name(name string) Attr {
	return Attr{"name": name}
}

// Value sets the value attribute.
func Value(value string) Attr {
	return Attr{"value": value}
}

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr {
	return Attr{"placeholder": text}
}

// For associates a label with a form control.
func For(id string) Attr {
	return Attr{"htmlFor": id}
}

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr {
	return Attr{"disabled": disabled}
}

// Checked sets the checked attribute.
func Checked(checked bool) Attr {
	return Attr{"checked": checked}
}

// Role sets the ARIA role.
func Role(role string) Attr {
	return Attr{"role": role}
}

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr {
	return Attr{"aria-label": label}
}

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr {
	return Attr{"aria-hidden": hidden}
}
