package bridge

// Drawer pass-throughs. Drawer visibility is transient UI state, so all of
// these are silent no-ops while the form's editor is initializing: a freshly
// initialized editor always starts with no drawer showing, and replaying a
// stale toggle would surprise the user.

// ShowComponentDrawer opens the blocks drawer for the named component
// instance.
func (b *Bridge) ShowComponentDrawer(formName, name string) error {
	return b.drawerCall(formName, "show component drawer", func(ed Editor) error {
		return ed.ShowComponentDrawer(name)
	})
}

// HideComponentDrawer closes any open component drawer.
func (b *Bridge) HideComponentDrawer(formName string) error {
	return b.drawerCall(formName, "hide component drawer", func(ed Editor) error {
		return ed.HideComponentDrawer()
	})
}

// ShowBuiltinDrawer opens the named built-in blocks drawer.
func (b *Bridge) ShowBuiltinDrawer(formName, name string) error {
	return b.drawerCall(formName, "show builtin drawer", func(ed Editor) error {
		return ed.ShowBuiltinDrawer(name)
	})
}

// HideBuiltinDrawer closes any open built-in drawer.
func (b *Bridge) HideBuiltinDrawer(formName string) error {
	return b.drawerCall(formName, "hide builtin drawer", func(ed Editor) error {
		return ed.HideBuiltinDrawer()
	})
}

func (b *Bridge) drawerCall(formName, what string, call func(Editor) error) error {
	b.mu.RLock()
	f := b.forms[formName]
	if f == nil {
		b.mu.RUnlock()
		return ErrFormNotFound(formName)
	}
	if f.pending != nil || f.editor == nil {
		b.mu.RUnlock()
		return nil
	}
	ed := f.editor
	b.mu.RUnlock()

	if err := call(ed); err != nil {
		return ErrEditorUnavailable(what + ": " + err.Error())
	}
	return nil
}

// DrawerShowing reports whether the form's editor currently shows any drawer.
// It is false while the editor is initializing.
func (b *Bridge) DrawerShowing(formName string) (bool, error) {
	b.mu.RLock()
	f := b.forms[formName]
	if f == nil {
		b.mu.RUnlock()
		return false, ErrFormNotFound(formName)
	}
	if f.pending != nil || f.editor == nil {
		b.mu.RUnlock()
		return false, nil
	}
	ed := f.editor
	b.mu.RUnlock()

	showing, err := ed.DrawerShowing()
	if err != nil {
		return false, ErrEditorUnavailable("drawer showing: " + err.Error())
	}
	return showing, nil
}
