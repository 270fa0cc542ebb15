package editorws

import "encoding/json"

// Envelope is the single frame shape exchanged with editors. Type selects
// which of the remaining fields are meaningful.
type Envelope struct {
	// Type is one of the Type* constants.
	Type string `json:"type"`
	// Form names the form the frame concerns. Required in hello; echoed in
	// server frames for the editor's convenience.
	Form string `json:"form,omitempty"`
	// ID correlates a value call with its result. Zero (omitted) marks a
	// fire-and-forget call that must not be replied to.
	ID int64 `json:"id,omitempty"`
	// Method is the operation name for call frames, one of the Method*
	// constants.
	Method string `json:"method,omitempty"`
	// Params carries the method arguments of a call frame.
	Params json.RawMessage `json:"params,omitempty"`
	// Result carries the payload of a successful result frame.
	Result json.RawMessage `json:"result,omitempty"`
	// Error carries the failure text of a result or error frame.
	Error string `json:"error,omitempty"`
}

// Frame types.
const (
	// TypeHello is the first frame an editor sends: {type, form}.
	TypeHello = "hello"
	// TypeAttached acknowledges a hello after state replay completed.
	TypeAttached = "attached"
	// TypeCall is a server-to-editor operation.
	TypeCall = "call"
	// TypeResult is an editor-to-server reply to a call with non-zero id.
	TypeResult = "result"
	// TypeError reports a fatal protocol failure before closing.
	TypeError = "error"
)

// Call methods.
const (
	MethodComponentAdd        = "component_add"
	MethodComponentRemove     = "component_remove"
	MethodComponentRename     = "component_rename"
	MethodDrawerShowComponent = "drawer_show_component"
	MethodDrawerHideComponent = "drawer_hide_component"
	MethodDrawerShowBuiltin   = "drawer_show_builtin"
	MethodDrawerHideBuiltin   = "drawer_hide_builtin"
	MethodDrawerShowing       = "drawer_showing"
	MethodContentLoad         = "content_load"
	MethodContentGet          = "content_get"
	MethodYailGet             = "yail_get"
)

// AddComponentParams are the arguments of component_add.
type AddComponentParams struct {
	TypeDescription string `json:"typeDescription"`
	Name            string `json:"name"`
	UID             string `json:"uid"`
}

// RemoveComponentParams are the arguments of component_remove.
type RemoveComponentParams struct {
	TypeName string `json:"typeName"`
	Name     string `json:"name"`
	UID      string `json:"uid"`
}

// RenameComponentParams are the arguments of component_rename.
type RenameComponentParams struct {
	TypeName string `json:"typeName"`
	OldName  string `json:"oldName"`
	NewName  string `json:"newName"`
	UID      string `json:"uid"`
}

// DrawerParams are the arguments of drawer_show_component and
// drawer_show_builtin.
type DrawerParams struct {
	Name string `json:"name"`
}

// LoadContentParams are the arguments of content_load.
type LoadContentParams struct {
	Content string `json:"content"`
}

// DrawerShowingResult is the payload answering drawer_showing.
type DrawerShowingResult struct {
	Showing bool `json:"showing"`
}

// ContentResult is the payload answering content_get.
type ContentResult struct {
	Content string `json:"content"`
}

// YailResult is the payload answering yail_get.
type YailResult struct {
	Yail string `json:"yail"`
}
