package editorws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"blocksd/internal/bridge"
)

// fakeAttacher stands in for the bridge: it records attach/detach calls and
// hands the attached Editor back to the test.
type fakeAttacher struct {
	mu       sync.Mutex
	editors  map[string]bridge.Editor
	attached []string
	detached []string
	reject   map[string]bool
}

func newFakeAttacher() *fakeAttacher {
	return &fakeAttacher{
		editors: make(map[string]bridge.Editor),
		reject:  make(map[string]bool),
	}
}

func (f *fakeAttacher) Attach(form string, ed bridge.Editor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reject[form] {
		return bridge.ErrFormNotFound(form)
	}
	f.editors[form] = ed
	f.attached = append(f.attached, form)
	return nil
}

func (f *fakeAttacher) Detach(form string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detached = append(f.detached, form)
}

func (f *fakeAttacher) editor(form string) bridge.Editor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editors[form]
}

func (f *fakeAttacher) attachCount(form string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, name := range f.attached {
		if name == form {
			n++
		}
	}
	return n
}

func (f *fakeAttacher) detachCount(form string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, name := range f.detached {
		if name == form {
			n++
		}
	}
	return n
}

// newTestHub starts a Hub behind an httptest server.
func newTestHub(t *testing.T) (*Hub, *fakeAttacher, *httptest.Server) {
	t.Helper()
	fa := newFakeAttacher()
	h := NewHub(fa)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return h, fa, srv
}

// wsTestClient is a helper for editor protocol testing.
type wsTestClient struct {
	conn    *websocket.Conn
	t       *testing.T
	timeout time.Duration
}

// newWSTestClient connects a fake editor to the test server.
func newWSTestClient(t *testing.T, server *httptest.Server) *wsTestClient {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "dial websocket")
	return &wsTestClient{
		conn:    conn,
		t:       t,
		timeout: 2 * time.Second,
	}
}

// send sends an envelope to the server.
func (c *wsTestClient) send(env Envelope) {
	c.t.Helper()
	data, err := json.Marshal(env)
	require.NoError(c.t, err, "marshal envelope")
	require.NoError(c.t, c.conn.WriteMessage(websocket.TextMessage, data), "send envelope")
}

// sendJSON sends a raw JSON message.
func (c *wsTestClient) sendJSON(msg string) {
	c.t.Helper()
	require.NoError(c.t, c.conn.WriteMessage(websocket.TextMessage, []byte(msg)), "send raw message")
}

// receive receives one envelope with timeout.
func (c *wsTestClient) receive() (Envelope, error) {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(c.timeout))
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return Envelope{}, err
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// expectType receives one envelope and asserts its type.
func (c *wsTestClient) expectType(typ string) Envelope {
	c.t.Helper()
	env, err := c.receive()
	require.NoError(c.t, err, "receive %s envelope", typ)
	require.Equal(c.t, typ, env.Type)
	return env
}

// hello performs the handshake for a form and waits for the attach ack.
func (c *wsTestClient) hello(form string) {
	c.t.Helper()
	c.send(Envelope{Type: TypeHello, Form: form})
	c.expectType(TypeAttached)
}

// close closes the client side of the connection.
func (c *wsTestClient) close() {
	_ = c.conn.Close()
}
