package bridge

// notInitializedError signals that output was requested from a form whose
// editor has not finished initializing.
type notInitializedError struct {
	form string
}

func (e notInitializedError) Error() string {
	return "blocks editor not initialized for form: " + e.form
}

// ErrNotInitialized constructs a not-initialized error for the given form.
func ErrNotInitialized(form string) error {
	return notInitializedError{form: form}
}

// IsNotInitialized reports whether err indicates the form's editor has not
// completed initialization yet. The HTTP layer maps this to 409.
func IsNotInitialized(err error) bool {
	_, ok := err.(notInitializedError)
	return ok
}

// formNotFoundError signals an operation against a form that was never
// registered (or has been unregistered).
type formNotFoundError struct {
	form string
}

func (e formNotFoundError) Error() string {
	return "form not registered: " + e.form
}

// ErrFormNotFound constructs a form-not-found error.
func ErrFormNotFound(form string) error {
	return formNotFoundError{form: form}
}

// IsFormNotFound reports whether err indicates an unknown form. The HTTP
// layer maps this to 404.
func IsFormNotFound(err error) bool {
	_, ok := err.(formNotFoundError)
	return ok
}

// editorUnavailableError signals that a relay to a supposedly live editor
// failed, typically because its connection died mid-call.
type editorUnavailableError struct {
	msg string
}

func (e editorUnavailableError) Error() string {
	return "editor unavailable: " + e.msg
}

// ErrEditorUnavailable constructs an editor-unavailable error.
func ErrEditorUnavailable(msg string) error {
	return editorUnavailableError{msg: msg}
}

// IsEditorUnavailable reports whether err indicates a failed editor relay.
// The HTTP layer maps this to 502.
func IsEditorUnavailable(err error) bool {
	_, ok := err.(editorUnavailableError)
	return ok
}
