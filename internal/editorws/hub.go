package editorws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"blocksd/internal/bridge"
)

// helloTimeout bounds how long a fresh connection may take to identify
// itself before it is dropped.
const helloTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // editors are served from the host IDE's own iframe origins
	},
}

// Attacher is the part of the bridge the hub drives: readiness on hello,
// detach on disconnect.
type Attacher interface {
	Attach(formName string, ed bridge.Editor) error
	Detach(formName string)
}

// Hub accepts editor WebSocket connections and keeps at most one live
// connection per form.
type Hub struct {
	attacher    Attacher
	log         zerolog.Logger
	callTimeout time.Duration

	mu    sync.Mutex
	conns map[string]*editorConn
}

// NewHub constructs a Hub over the given attacher.
func NewHub(att Attacher) *Hub {
	return &Hub{
		attacher:    att,
		log:         zerolog.Nop(),
		callTimeout: defaultCallTimeout,
		conns:       make(map[string]*editorConn),
	}
}

// SetLogger installs a logger for connection lifecycle diagnostics.
func (h *Hub) SetLogger(l zerolog.Logger) {
	h.log = l
}

// SetCallTimeout bounds how long a value call waits for an editor's reply.
// Non-positive values keep the default.
func (h *Hub) SetCallTimeout(d time.Duration) {
	if d > 0 {
		h.callTimeout = d
	}
}

// ConnectedForms returns the forms with a live editor connection, for
// diagnostics.
func (h *Hub) ConnectedForms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.conns))
	for form := range h.conns {
		out = append(out, form)
	}
	return out
}

// ServeHTTP upgrades the connection, performs the hello handshake, attaches
// the editor to its form and then pumps frames until the connection dies.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	form, ok := h.awaitHello(ws)
	if !ok {
		_ = ws.Close()
		return
	}

	conn := newEditorConn(form, ws, h.log, h.callTimeout)

	// Register before Attach so calls issued during replay find a live conn.
	// A previous connection for the form is superseded: the editor surface
	// was reparented and reconnected before the old socket noticed.
	h.mu.Lock()
	prev := h.conns[form]
	h.conns[form] = conn
	editorsConnected.Set(float64(len(h.conns)))
	h.mu.Unlock()
	if prev != nil {
		h.log.Info().Str("form", form).Msg("superseding previous editor connection")
		prev.closeWithReason(websocket.ClosePolicyViolation, "superseded by new editor connection")
	}

	if err := h.attacher.Attach(form, conn); err != nil {
		h.log.Warn().Str("form", form).Err(err).Msg("editor attach rejected")
		h.unregister(form, conn)
		_ = conn.send(Envelope{Type: TypeError, Form: form, Error: err.Error()})
		conn.closeWithReason(websocket.ClosePolicyViolation, err.Error())
		return
	}
	_ = conn.send(Envelope{Type: TypeAttached, Form: form})
	h.log.Info().Str("form", form).Str("remote", ws.RemoteAddr().String()).Msg("editor connected")

	h.readLoop(conn)

	conn.fail()
	_ = ws.Close()
	if h.unregister(form, conn) {
		// Only the registered connection speaks for the form; a superseded
		// one must not detach its replacement.
		h.attacher.Detach(form)
		h.log.Info().Str("form", form).Msg("editor disconnected")
	}
}

// awaitHello reads and validates the identification frame.
func (h *Hub) awaitHello(ws *websocket.Conn) (string, bool) {
	_ = ws.SetReadDeadline(time.Now().Add(helloTimeout))
	defer func() { _ = ws.SetReadDeadline(time.Time{}) }()

	_, data, err := ws.ReadMessage()
	if err != nil {
		h.log.Warn().Err(err).Msg("no hello frame")
		return "", false
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		h.log.Warn().Err(err).Msg("malformed hello frame")
		return "", false
	}
	if env.Type != TypeHello || env.Form == "" {
		h.log.Warn().Str("type", env.Type).Msg("expected hello frame with form")
		return "", false
	}
	return env.Form, true
}

// readLoop dispatches frames from the editor until the connection errors.
func (h *Hub) readLoop(c *editorConn) {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn().Str("form", c.form).Err(err).Msg("editor read error")
			}
			return
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			h.log.Warn().Str("form", c.form).Err(err).Msg("malformed editor frame")
			continue
		}
		switch env.Type {
		case TypeResult:
			c.dispatchResult(env)
		case TypeHello:
			// Re-identification on a live connection is a protocol error;
			// reconnects must open a new socket.
			h.log.Warn().Str("form", c.form).Msg("duplicate hello ignored")
		default:
			h.log.Debug().Str("form", c.form).Str("type", env.Type).Msg("unexpected editor frame")
		}
	}
}

// unregister removes the conn from the registry if it is still the one
// registered for the form. Reports whether it was.
func (h *Hub) unregister(form string, c *editorConn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[form] != c {
		return false
	}
	delete(h.conns, form)
	editorsConnected.Set(float64(len(h.conns)))
	return true
}
