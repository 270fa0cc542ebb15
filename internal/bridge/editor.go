package bridge

// Editor is the capability surface of one embedded blocks editor instance.
// The production implementation lives in internal/editorws and speaks the
// WebSocket envelope protocol; tests substitute in-memory fakes.
//
// Implementations surface transport failures as errors; the bridge treats
// those as editor-unavailable, never as fatal state corruption.
type Editor interface {
	// AddComponent creates editor-side state for a new component instance.
	// typeDescription is the descriptor JSON for the component's type.
	AddComponent(typeDescription, name, uid string) error
	// RemoveComponent tears down editor-side state for an instance.
	RemoveComponent(typeName, name, uid string) error
	// RenameComponent renames an instance, rewriting references in blocks.
	RenameComponent(typeName, oldName, newName, uid string) error

	// Drawer control. Drawer visibility is transient UI state and is never
	// buffered by the bridge.
	ShowComponentDrawer(name string) error
	HideComponentDrawer() error
	ShowBuiltinDrawer(name string) error
	HideBuiltinDrawer() error
	DrawerShowing() (bool, error)

	// LoadContent replaces the editor workspace with serialized blocks
	// content; Content returns the current serialized workspace. Both treat
	// the content as an opaque string.
	LoadContent(content string) error
	Content() (string, error)

	// GenerateYail produces runnable code for the current workspace.
	GenerateYail() (string, error)
}
