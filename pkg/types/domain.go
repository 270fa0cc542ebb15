package types

// ComponentType describes one entry of the component type catalog: a named
// component kind (e.g. Button, Canvas) together with the raw descriptor JSON
// the embedded blocks editor consumes when the component is added to a form.
type ComponentType struct {
	// Type name, derived from the descriptor file name.
	// example: Button
	Name string `json:"name" example:"Button"`
	// Absolute path to the descriptor file on disk.
	// example: /etc/blocksd/catalog/Button.json
	Path string `json:"path" example:"/etc/blocksd/catalog/Button.json"`
	// Raw descriptor JSON. Opaque to blocksd; relayed to the editor verbatim.
	Description string `json:"description"`
}
