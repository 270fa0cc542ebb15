// Package bridge coordinates structural state between the host designer and
// the per-form embedded blocks editors. Each editor bootstraps asynchronously
// (and again after every detach/reattach of its surface), so the bridge
// buffers component operations and workspace content until an editor announces
// readiness, then replays them in order. It is structured into small files by
// concern:
//
//   - bridge.go: core Bridge type, constructor, simple getters.
//   - config.go: BridgeConfig and package defaults; NewWithConfig applies defaults.
//   - ops.go: the ComponentOp union (add/remove/rename) and relay helpers.
//   - editor.go: the Editor capability interface implemented by transports.
//   - errors.go: error types and helpers (IsNotInitialized, IsFormNotFound, ...).
//   - lifecycle.go: Register/Unregister/Attach/Detach/SaveForReinit transitions.
//   - components.go: submit path and the component snapshot bookkeeping.
//   - content.go: workspace content load/save and the pending-content cache.
//   - drawer.go: drawer visibility pass-throughs.
//   - yail.go: code generation entry point.
//   - status.go: Status/FormStatus reporting helpers.
//   - events.go: lifecycle event publishing.
//   - metrics.go: Prometheus instrumentation.
//
// External packages should treat this package as the synchronization layer and
// use public methods only; per-form internals are subject to change.
package bridge
