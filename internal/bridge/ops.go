package bridge

// ComponentOp is one structural change to a form's component set. It is a
// closed union: only AddComponentOp, RemoveComponentOp and RenameComponentOp
// implement it. Ops are buffered verbatim while a form's editor is
// initializing and replayed in submission order on attach.
type ComponentOp interface {
	componentOp()
}

// AddComponentOp records a component instance being added to a form.
type AddComponentOp struct {
	// TypeDescription is the descriptor JSON for the component's type,
	// passed to the editor verbatim so it can build the matching drawer and
	// block definitions.
	TypeDescription string
	// Name is the instance name chosen in the designer.
	Name string
	// UID identifies the instance for its whole lifetime, across renames.
	UID string
}

// RemoveComponentOp records a component instance being removed from a form.
type RemoveComponentOp struct {
	TypeName string
	Name     string
	UID      string
}

// RenameComponentOp records a component instance changing its name.
type RenameComponentOp struct {
	TypeName string
	OldName  string
	NewName  string
	UID      string
}

func (AddComponentOp) componentOp()    {}
func (RemoveComponentOp) componentOp() {}
func (RenameComponentOp) componentOp() {}

// relayOp forwards a single operation to an editor.
func relayOp(ed Editor, op ComponentOp) error {
	switch op := op.(type) {
	case AddComponentOp:
		return ed.AddComponent(op.TypeDescription, op.Name, op.UID)
	case RemoveComponentOp:
		return ed.RemoveComponent(op.TypeName, op.Name, op.UID)
	case RenameComponentOp:
		return ed.RenameComponent(op.TypeName, op.OldName, op.NewName, op.UID)
	}
	return nil
}

// opKind returns the metric/log label for an operation.
func opKind(op ComponentOp) string {
	switch op.(type) {
	case AddComponentOp:
		return "add"
	case RemoveComponentOp:
		return "remove"
	case RenameComponentOp:
		return "rename"
	}
	return "unknown"
}
