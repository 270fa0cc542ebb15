package types

// ComponentAddRequest is the payload for POST /forms/{form}/components.
// Exactly one of Type or TypeDescription should be set: Type references a
// catalog entry by name, TypeDescription carries the descriptor JSON inline.
type ComponentAddRequest struct {
	// Unique id of the component instance within its form.
	// example: 1
	UID string `json:"uid" example:"1"`
	// Instance name shown in the designer.
	// example: Button1
	Name string `json:"name" example:"Button1"`
	// Catalog type name; resolved to a descriptor server-side.
	// example: Button
	Type string `json:"type,omitempty" example:"Button"`
	// Inline descriptor JSON, passed through to the editor verbatim.
	TypeDescription string `json:"type_description,omitempty"`
}

// ComponentRenameRequest is the payload for
// POST /forms/{form}/components/{uid}/rename.
type ComponentRenameRequest struct {
	// Component type name (e.g., "Canvas" or "Button").
	// example: Button
	Type string `json:"type" example:"Button"`
	// Instance name before the rename.
	// example: Button1
	OldName string `json:"old_name" example:"Button1"`
	// Instance name after the rename.
	// example: SubmitButton
	NewName string `json:"new_name" example:"SubmitButton"`
}

// Drawer actions accepted by POST /forms/{form}/drawer.
const (
	DrawerShowComponent = "show_component"
	DrawerHideComponent = "hide_component"
	DrawerShowBuiltin   = "show_builtin"
	DrawerHideBuiltin   = "hide_builtin"
)

// DrawerRequest is the payload for POST /forms/{form}/drawer.
type DrawerRequest struct {
	// One of show_component, hide_component, show_builtin, hide_builtin.
	// example: show_component
	Action string `json:"action" example:"show_component"`
	// Component instance name or builtin drawer name; required for show actions.
	// example: Button1
	Name string `json:"name,omitempty" example:"Button1"`
}

// DrawerStatus is returned by GET /forms/{form}/drawer.
type DrawerStatus struct {
	// Whether a drawer is currently showing in the editor.
	// example: false
	Showing bool `json:"showing" example:"false"`
}

// FormStatus summarizes one registered form for /status and /forms.
type FormStatus struct {
	// Form name (the editor instance key).
	// example: Screen1
	Name string `json:"name" example:"Screen1"`
	// True once the embedded editor finished (re)initialization.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// True while an editor connection is attached.
	// example: true
	EditorAttached bool `json:"editor_attached" example:"true"`
	// Number of operations buffered while not ready.
	// example: 0
	PendingOps int `json:"pending_ops" example:"0"`
	// Number of components in the current snapshot.
	// example: 3
	Components int `json:"components" example:"3"`
	// True when workspace content is cached for the next initialization.
	// example: false
	HasPendingContent bool `json:"has_pending_content" example:"false"`
}

// FormsResponse wraps the list returned by GET /forms.
type FormsResponse struct {
	Forms []FormStatus `json:"forms"`
}

// ComponentsResponse wraps the catalog returned by GET /components.
type ComponentsResponse struct {
	Components []ComponentType `json:"components"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Per-form detail.
	Forms []FormStatus `json:"forms"`
	// Number of registered forms.
	// example: 2
	RegisteredForms int `json:"registered_forms" example:"2"`
	// Number of forms whose editor is ready.
	// example: 1
	ReadyForms int `json:"ready_forms" example:"1"`
	// Total buffered operations across all forms.
	// example: 4
	TotalPendingOps int `json:"total_pending_ops" example:"4"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: form not registered: Screen9
	Error string `json:"error" example:"form not registered: Screen9"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
