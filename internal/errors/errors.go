package errors

import (
	"fmt"
	"sync"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender    Category = "render"
	CategoryHook      Category = "hook"
	CategoryLifecycle Category = "lifecycle"
	CategoryConfig    Category = "config"
)

// Error is a structured runtime error with a stable code and the name of
// the component it originated from.
type Error struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (render, hook, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Component is the display name of the component involved, if any.
	Component string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Component != "" {
		msg = fmt.Sprintf("%s (component %s)", msg, e.Component)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithComponent attaches a component name to the error.
func (e *Error) WithComponent(name string) *Error {
	e.Component = name
	return e
}

// Wrap attaches an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered code.
// Unknown codes produce a generic runtime error carrying the code.
func New(code string) *Error {
	if tpl, ok := registry[code]; ok {
		return &Error{
			Code:     code,
			Category: tpl.Category,
			Message:  tpl.Message,
		}
	}
	return &Error{
		Code:     code,
		Category: CategoryRender,
		Message:  "unknown error",
	}
}

// Handler receives every reported error.
type Handler func(*Error)

var (
	handlerMu sync.RWMutex
	handler   Handler
)

// SetHandler installs the process-wide error handler and returns the
// previous one. Tests use this to observe reported faults.
func SetHandler(h Handler) Handler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Report delivers an error to the installed handler, if any.
// Reporting never panics and never propagates.
func Report(e *Error) {
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	if h != nil {
		h(e)
	}
}
