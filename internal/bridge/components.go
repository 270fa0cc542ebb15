package bridge

// AddComponent records a new component instance in the form's blocks
// workspace, or buffers the add until the editor initializes.
// typeDescription is the descriptor JSON relayed to the editor verbatim.
func (b *Bridge) AddComponent(formName, typeDescription, name, uid string) error {
	return b.submit(formName, AddComponentOp{TypeDescription: typeDescription, Name: name, UID: uid})
}

// RemoveComponent removes a component instance from the form's blocks
// workspace, or buffers the removal until the editor initializes.
func (b *Bridge) RemoveComponent(formName, typeName, name, uid string) error {
	return b.submit(formName, RemoveComponentOp{TypeName: typeName, Name: name, UID: uid})
}

// RenameComponent renames a component instance in the form's blocks
// workspace, or buffers the rename until the editor initializes.
func (b *Bridge) RenameComponent(formName, typeName, oldName, newName, uid string) error {
	return b.submit(formName, RenameComponentOp{TypeName: typeName, OldName: oldName, NewName: newName, UID: uid})
}

// submit dispatches one structural operation: buffered while the form's
// editor is initializing, otherwise relayed to the editor and folded into the
// snapshot. A failed relay still updates the snapshot, which records what
// should exist; the next replay converges the editor.
func (b *Bridge) submit(formName string, op ComponentOp) error {
	b.mu.Lock()
	f := b.forms[formName]
	if f == nil {
		b.mu.Unlock()
		return ErrFormNotFound(formName)
	}

	if f.pending != nil {
		f.pending = append(f.pending, op)
		depth := len(f.pending)
		warnNow := depth >= b.warnThreshold && !f.warned
		if warnNow {
			f.warned = true
		}
		opsBuffered.WithLabelValues(opKind(op)).Inc()
		b.refreshGauges()
		b.mu.Unlock()

		if warnNow {
			b.log.Warn().Str("form", formName).Int("pending", depth).
				Msg("pending operation queue high water, editor still not initialized")
			b.publisher.Publish(Event{Name: "pending_ops_high_water", Form: formName, Fields: map[string]any{
				"pending": depth,
			}})
		}
		return nil
	}

	var relayErr error
	if f.editor == nil {
		relayErr = ErrEditorUnavailable("no editor attached")
	} else if err := relayOp(f.editor, op); err != nil {
		relayErr = ErrEditorUnavailable(opKind(op) + " component: " + err.Error())
	}
	b.recordOp(f, op)
	opsApplied.WithLabelValues(opKind(op)).Inc()
	b.mu.Unlock()

	if relayErr != nil {
		b.log.Warn().Str("form", formName).Str("op", opKind(op)).Err(relayErr).
			Msg("editor relay failed, snapshot updated anyway")
		return relayErr
	}
	return nil
}

// recordOp folds op into the form's component snapshot so the snapshot always
// reflects the net effect of every operation accepted so far. Precondition
// failures (duplicate uid on add, unknown uid on remove/rename, stale names)
// are logged, counted and skipped, never fatal: the designer is authoritative
// and a single inconsistent message must not wedge the form.
// Callers must hold b.mu.
func (b *Bridge) recordOp(f *form, op ComponentOp) {
	switch op := op.(type) {
	case AddComponentOp:
		if prev, ok := f.components[op.UID]; ok {
			b.log.Warn().Str("form", f.name).Str("uid", op.UID).
				Str("existing", prev.name).Str("adding", op.Name).
				Msg("add: uid already tracked, keeping existing entry")
			consistencyWarnings.WithLabelValues("duplicate_add").Inc()
			return
		}
		f.components[op.UID] = &component{
			uid:             op.UID,
			name:            op.Name,
			typeDescription: op.TypeDescription,
		}

	case RemoveComponentOp:
		c, ok := f.components[op.UID]
		if !ok || c.name != op.Name {
			b.log.Warn().Str("form", f.name).Str("uid", op.UID).Str("name", op.Name).
				Msg("remove: no tracked component matches uid and name")
			consistencyWarnings.WithLabelValues("unmatched_remove").Inc()
			return
		}
		delete(f.components, op.UID)

	case RenameComponentOp:
		c, ok := f.components[op.UID]
		if !ok {
			b.log.Warn().Str("form", f.name).Str("uid", op.UID).
				Msg("rename: uid not tracked")
			consistencyWarnings.WithLabelValues("unmatched_rename").Inc()
			return
		}
		if c.name != op.OldName {
			b.log.Warn().Str("form", f.name).Str("uid", op.UID).
				Str("tracked", c.name).Str("claimed", op.OldName).
				Msg("rename: tracked name does not match old name")
			consistencyWarnings.WithLabelValues("rename_name_mismatch").Inc()
			return
		}
		c.name = op.NewName
	}
}
