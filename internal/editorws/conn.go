package editorws

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	defaultCallTimeout = 10 * time.Second
	writeTimeout       = 10 * time.Second
)

var (
	errCallTimeout = errors.New("editor call timed out")
	errConnClosed  = errors.New("editor connection closed")
)

// editorConn adapts one editor WebSocket connection to the bridge's Editor
// capability. Mutations go out as fire-and-forget call frames; value reads
// allocate an id and block until the matching result frame arrives, the
// timeout fires, or the connection dies.
type editorConn struct {
	form string
	ws   *websocket.Conn
	log  zerolog.Logger

	callTimeout time.Duration

	// writeMu serializes frame writes; gorilla allows one writer at a time.
	writeMu sync.Mutex

	mu      sync.Mutex
	nextID  int64
	pending map[int64]chan callResult
	closed  bool
	done    chan struct{}
}

type callResult struct {
	result json.RawMessage
	err    error
}

func newEditorConn(form string, ws *websocket.Conn, log zerolog.Logger, callTimeout time.Duration) *editorConn {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &editorConn{
		form:        form,
		ws:          ws,
		log:         log,
		callTimeout: callTimeout,
		pending:     make(map[int64]chan callResult),
		done:        make(chan struct{}),
	}
}

// send marshals and writes one envelope under the write lock.
func (c *editorConn) send(env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// notify sends a fire-and-forget call frame. The editor applies it without
// replying; a transport failure is the only error surfaced.
func (c *editorConn) notify(method string, params any) error {
	env := Envelope{Type: TypeCall, Form: c.form, Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("marshal %s params: %w", method, err)
		}
		env.Params = raw
	}
	return c.send(env)
}

// call sends an id-correlated call frame and waits for its result.
func (c *editorConn) call(method string, params any) (json.RawMessage, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, errConnClosed
	}
	c.nextID++
	id := c.nextID
	ch := make(chan callResult, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	env := Envelope{Type: TypeCall, Form: c.form, ID: id, Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("marshal %s params: %w", method, err)
		}
		env.Params = raw
	}
	if err := c.send(env); err != nil {
		return nil, err
	}

	timer := time.NewTimer(c.callTimeout)
	defer timer.Stop()
	select {
	case res := <-ch:
		return res.result, res.err
	case <-c.done:
		return nil, errConnClosed
	case <-timer.C:
		return nil, fmt.Errorf("%s: %w", method, errCallTimeout)
	}
}

// dispatchResult routes an incoming result frame to its waiting call. A
// result for an unknown id (typically a reply landing after the call timed
// out) is dropped.
func (c *editorConn) dispatchResult(env Envelope) {
	c.mu.Lock()
	ch, ok := c.pending[env.ID]
	if ok {
		delete(c.pending, env.ID)
	}
	c.mu.Unlock()
	if !ok {
		c.log.Debug().Str("form", c.form).Int64("id", env.ID).Msg("result for unknown call id")
		return
	}
	if env.Error != "" {
		ch <- callResult{err: errors.New("editor error: " + env.Error)}
		return
	}
	ch <- callResult{result: env.Result}
}

// fail marks the connection dead and releases every in-flight call.
func (c *editorConn) fail() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()
}

// closeWithReason sends a close frame and tears the socket down. WriteControl
// is safe to call concurrently with frame writes.
func (c *editorConn) closeWithReason(code int, reason string) {
	deadline := time.Now().Add(writeTimeout)
	_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	_ = c.ws.Close()
	c.fail()
}

// Editor implementation.

func (c *editorConn) AddComponent(typeDescription, name, uid string) error {
	return c.notify(MethodComponentAdd, AddComponentParams{
		TypeDescription: typeDescription,
		Name:            name,
		UID:             uid,
	})
}

func (c *editorConn) RemoveComponent(typeName, name, uid string) error {
	return c.notify(MethodComponentRemove, RemoveComponentParams{
		TypeName: typeName,
		Name:     name,
		UID:      uid,
	})
}

func (c *editorConn) RenameComponent(typeName, oldName, newName, uid string) error {
	return c.notify(MethodComponentRename, RenameComponentParams{
		TypeName: typeName,
		OldName:  oldName,
		NewName:  newName,
		UID:      uid,
	})
}

func (c *editorConn) ShowComponentDrawer(name string) error {
	return c.notify(MethodDrawerShowComponent, DrawerParams{Name: name})
}

func (c *editorConn) HideComponentDrawer() error {
	return c.notify(MethodDrawerHideComponent, nil)
}

func (c *editorConn) ShowBuiltinDrawer(name string) error {
	return c.notify(MethodDrawerShowBuiltin, DrawerParams{Name: name})
}

func (c *editorConn) HideBuiltinDrawer() error {
	return c.notify(MethodDrawerHideBuiltin, nil)
}

func (c *editorConn) DrawerShowing() (bool, error) {
	raw, err := c.call(MethodDrawerShowing, nil)
	if err != nil {
		return false, err
	}
	var out DrawerShowingResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, fmt.Errorf("decode %s result: %w", MethodDrawerShowing, err)
	}
	return out.Showing, nil
}

func (c *editorConn) LoadContent(content string) error {
	return c.notify(MethodContentLoad, LoadContentParams{Content: content})
}

func (c *editorConn) Content() (string, error) {
	raw, err := c.call(MethodContentGet, nil)
	if err != nil {
		return "", err
	}
	var out ContentResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode %s result: %w", MethodContentGet, err)
	}
	return out.Content, nil
}

func (c *editorConn) GenerateYail() (string, error) {
	raw, err := c.call(MethodYailGet, nil)
	if err != nil {
		return "", err
	}
	var out YailResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode %s result: %w", MethodYailGet, err)
	}
	return out.Yail, nil
}
