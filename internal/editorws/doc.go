// Package editorws is the WebSocket transport between the daemon and the
// embedded blocks editors. Each editor opens one connection, announces the
// form it serves with a hello frame, and is then driven through JSON call
// envelopes: fire-and-forget calls for state mutations, id-correlated calls
// for value reads (content, yail, drawer state).
//
// The Hub owns the connection registry. A second hello for a form supersedes
// the first connection (the editor surface was reparented and reconnected
// before the old socket noticed); a disconnect of the registered connection
// detaches the form so the bridge falls back to buffering.
package editorws
