package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"E001": {
		Category: CategoryRender,
		Message:  "render function panicked",
	},
	"E002": {
		Category: CategoryHook,
		Message:  "hook called outside an active render",
	},
	"E003": {
		Category: CategoryHook,
		Message:  "hook order or slot type changed between renders",
	},
	"E004": {
		Category: CategoryLifecycle,
		Message:  "effect cleanup panicked",
	},
	"E005": {
		Category: CategoryLifecycle,
		Message:  "instance used after teardown",
	},
	"E006": {
		Category: CategoryConfig,
		Message:  "invalid configuration",
	},
}
