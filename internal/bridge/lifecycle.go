package bridge

// Register initializes synchronizer state for a form: an empty pending queue
// (the form starts buffering) and an empty component snapshot. Registering an
// already-known form resets queue and snapshot and drops any editor handle;
// cached pending content survives, so a workspace saved before the reset still
// loads on the next editor initialization.
func (b *Bridge) Register(formName string) {
	b.mu.Lock()
	f := b.forms[formName]
	if f == nil {
		f = &form{name: formName}
		b.forms[formName] = f
	}
	f.editor = nil
	f.pending = []ComponentOp{}
	f.components = make(map[string]*component)
	f.warned = false
	b.refreshGauges()
	b.mu.Unlock()

	b.log.Info().Str("form", formName).Msg("form registered")
	b.publisher.Publish(Event{Name: "form_registered", Form: formName})
}

// Unregister removes all synchronizer state for a form, including any cached
// content. A connected editor is not closed here; its transport notices on
// the next call or disconnect.
func (b *Bridge) Unregister(formName string) error {
	b.mu.Lock()
	if _, ok := b.forms[formName]; !ok {
		b.mu.Unlock()
		return ErrFormNotFound(formName)
	}
	delete(b.forms, formName)
	b.refreshGauges()
	b.mu.Unlock()

	b.log.Info().Str("form", formName).Msg("form unregistered")
	b.publisher.Publish(Event{Name: "form_unregistered", Form: formName})
	return nil
}

// Attach installs ed as the live editor for the form and replays accumulated
// state into it. This is the readiness signal: an editor calls it once per
// (re)initialization, after its workspace exists but before the user can
// interact with it.
//
// Replay order: snapshot components first, so buffered operations and content
// that reference them can resolve; then the pending queue in submission
// order, applied to the editor and folded into the snapshot; then cached
// workspace content, if any. Only then does the form leave the buffering
// state. Individual replay failures are logged and skipped; the snapshot
// keeps the intended state and the next attach converges the editor.
func (b *Bridge) Attach(formName string, ed Editor) error {
	b.mu.Lock()
	f := b.forms[formName]
	if f == nil {
		b.mu.Unlock()
		return ErrFormNotFound(formName)
	}
	f.editor = ed

	// Snapshot entries carry the type description captured at add time; a
	// rename still sitting in the queue is reconciled by the queue replay
	// right below.
	restored := len(f.components)
	for _, c := range f.components {
		if err := ed.AddComponent(c.typeDescription, c.name, c.uid); err != nil {
			b.log.Warn().Str("form", formName).Str("uid", c.uid).Err(err).
				Msg("snapshot replay: add failed")
		}
	}

	replayed := len(f.pending)
	for _, op := range f.pending {
		if err := relayOp(ed, op); err != nil {
			b.log.Warn().Str("form", formName).Str("op", opKind(op)).Err(err).
				Msg("queue replay: relay failed")
		}
		b.recordOp(f, op)
		opsApplied.WithLabelValues(opKind(op)).Inc()
	}
	f.pending = nil
	f.warned = false

	contentLoaded := false
	if f.pendingContent != nil {
		if err := ed.LoadContent(*f.pendingContent); err != nil {
			// Keep the cache: the next initialization gets another shot.
			b.log.Warn().Str("form", formName).Err(err).
				Msg("pending content load failed, cache retained")
		} else {
			f.pendingContent = nil
			contentLoaded = true
		}
	}
	replays.Inc()
	b.refreshGauges()
	b.mu.Unlock()

	b.log.Info().Str("form", formName).
		Int("restored", restored).
		Int("replayed", replayed).
		Bool("content_loaded", contentLoaded).
		Msg("editor attached")
	b.publisher.Publish(Event{Name: "editor_attached", Form: formName, Fields: map[string]any{
		"restored":       restored,
		"replayed":       replayed,
		"content_loaded": contentLoaded,
	}})
	return nil
}

// Detach drops the form's editor handle after its connection is gone. If the
// form was ready it is re-armed with an empty queue so subsequent operations
// buffer; a form already buffering keeps its queue untouched. The snapshot
// survives so the next Attach can rebuild the editor. No content is captured
// here: the editor is already unreachable. Hosts that plan a reinit call
// SaveForReinit while the editor is still alive.
func (b *Bridge) Detach(formName string) {
	b.mu.Lock()
	f := b.forms[formName]
	if f == nil {
		b.mu.Unlock()
		return
	}
	f.editor = nil
	if f.pending == nil {
		f.pending = []ComponentOp{}
		f.warned = false
	}
	b.refreshGauges()
	b.mu.Unlock()

	b.log.Info().Str("form", formName).Msg("editor detached")
	b.publisher.Publish(Event{Name: "editor_detached", Form: formName})
}

// SaveForReinit captures the form's current workspace content into the
// pending cache and re-arms the pending queue, preparing for a planned editor
// teardown (surface switch, project reload). The capture happens before the
// queue is re-armed: once the form is buffering, Content would serve the
// cache instead of the live editor.
//
// If the live capture fails the previous cache is kept and the error is
// returned, but the queue is still re-armed: the teardown happens regardless,
// and buffering is the only safe mode afterwards.
func (b *Bridge) SaveForReinit(formName string) error {
	b.mu.Lock()
	f := b.forms[formName]
	if f == nil {
		b.mu.Unlock()
		return ErrFormNotFound(formName)
	}

	var captureErr error
	content := ""
	switch {
	case f.pending == nil:
		if f.editor == nil {
			captureErr = ErrEditorUnavailable("no editor attached")
		} else if c, err := f.editor.Content(); err != nil {
			captureErr = ErrEditorUnavailable("capture content: " + err.Error())
		} else {
			content = c
		}
	case f.pendingContent != nil:
		// Still buffering from a previous cycle; carry the cache forward.
		content = *f.pendingContent
	}

	if captureErr == nil {
		f.pendingContent = &content
	}
	f.pending = []ComponentOp{}
	f.warned = false
	b.refreshGauges()
	b.mu.Unlock()

	if captureErr != nil {
		b.log.Error().Str("form", formName).Err(captureErr).
			Msg("reinit save: content capture failed, previous cache kept")
		b.publisher.Publish(Event{Name: "reinit_saved", Form: formName, Fields: map[string]any{
			"error": captureErr.Error(),
		}})
		return captureErr
	}

	b.log.Info().Str("form", formName).Int("bytes", len(content)).Msg("saved for reinit")
	b.publisher.Publish(Event{Name: "reinit_saved", Form: formName})
	return nil
}
