package bridge

// LoadContent loads serialized blocks content into the form's workspace. If
// the editor is still initializing the content is cached, replacing any
// previously cached content, and loads when the editor attaches. An
// explicitly cached empty string is a real value and will be loaded.
func (b *Bridge) LoadContent(formName, content string) error {
	b.mu.Lock()
	f := b.forms[formName]
	if f == nil {
		b.mu.Unlock()
		return ErrFormNotFound(formName)
	}
	if f.pending != nil {
		f.pendingContent = &content
		b.mu.Unlock()
		b.log.Debug().Str("form", formName).Int("bytes", len(content)).
			Msg("content cached until editor initializes")
		return nil
	}
	ed := f.editor
	b.mu.Unlock()

	if ed == nil {
		return ErrEditorUnavailable("no editor attached")
	}
	if err := ed.LoadContent(content); err != nil {
		return ErrEditorUnavailable("load content: " + err.Error())
	}
	return nil
}

// Content returns the form's serialized blocks workspace. While the editor is
// initializing this is the cached pending content, or empty if none is
// cached; once ready, the live editor is authoritative.
func (b *Bridge) Content(formName string) (string, error) {
	b.mu.RLock()
	f := b.forms[formName]
	if f == nil {
		b.mu.RUnlock()
		return "", ErrFormNotFound(formName)
	}
	if f.pending != nil {
		if f.pendingContent != nil {
			c := *f.pendingContent
			b.mu.RUnlock()
			return c, nil
		}
		b.mu.RUnlock()
		return "", nil
	}
	ed := f.editor
	b.mu.RUnlock()

	if ed == nil {
		return "", ErrEditorUnavailable("no editor attached")
	}
	c, err := ed.Content()
	if err != nil {
		return "", ErrEditorUnavailable("get content: " + err.Error())
	}
	return c, nil
}
