package bridge

// Yail returns generated YAIL code for the form's current workspace. Unlike
// Content there is no cached fallback: generation needs a live workspace, so
// a form whose editor is still initializing fails with a not-initialized
// error that callers are expected to branch on via IsNotInitialized.
func (b *Bridge) Yail(formName string) (string, error) {
	b.mu.RLock()
	f := b.forms[formName]
	if f == nil {
		b.mu.RUnlock()
		return "", ErrFormNotFound(formName)
	}
	if f.pending != nil {
		b.mu.RUnlock()
		return "", ErrNotInitialized(formName)
	}
	ed := f.editor
	b.mu.RUnlock()

	if ed == nil {
		return "", ErrEditorUnavailable("no editor attached")
	}
	out, err := ed.GenerateYail()
	if err != nil {
		return "", ErrEditorUnavailable("generate yail: " + err.Error())
	}
	return out, nil
}
