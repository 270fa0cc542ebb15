package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"blocksd/internal/bridge"
	"blocksd/internal/catalog"
	"blocksd/internal/editorws"
	"blocksd/internal/httpapi"
	"blocksd/pkg/types"
)

// createTempCatalogDir creates a temporary descriptor directory with one
// minimal JSON descriptor per type name and returns the directory path.
func createTempCatalogDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		desc := fmt.Sprintf(`{"type":%q,"version":1}`, n)
		if err := os.WriteFile(filepath.Join(dir, n+".json"), []byte(desc), 0o644); err != nil {
			t.Fatalf("write descriptor %s: %v", n, err)
		}
	}
	return dir
}

// newServer assembles the full daemon stack (bridge, catalog, websocket hub,
// HTTP mux) behind an httptest server.
func newServer(t *testing.T, catalogDir string) *httptest.Server {
	t.Helper()
	br := bridge.New()
	cat := catalog.New(catalogDir)
	if catalogDir != "" {
		if err := cat.Load(); err != nil {
			t.Fatalf("load catalog: %v", err)
		}
	}
	hub := editorws.NewHub(br)
	hub.SetCallTimeout(2 * time.Second)
	mux := httpapi.NewMux(br, cat, hub)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil { t.Fatalf("new req: %v", err) }
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do req: %v", err) }
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil { t.Fatalf("new req: %v", err) }
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do req: %v", err) }
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPut(t *testing.T, url, contentType string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, url, rd)
	if err != nil { t.Fatalf("new req: %v", err) }
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do req: %v", err) }
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpDelete(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, url, nil)
	if err != nil { t.Fatalf("new req: %v", err) }
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do req: %v", err) }
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

// registerForm registers a form and fails the test on anything but 200.
func registerForm(t *testing.T, base, form string) {
	t.Helper()
	resp, body := httpPut(t, base+"/forms/"+form, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register %s: status=%d body=%s", form, resp.StatusCode, string(body))
	}
}

// getFormStatus fetches and decodes GET /forms/{form}.
func getFormStatus(t *testing.T, base, form string) types.FormStatus {
	t.Helper()
	resp, body := httpGet(t, base+"/forms/"+form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("form status %s: status=%d body=%s", form, resp.StatusCode, string(body))
	}
	var fs types.FormStatus
	if err := json.Unmarshal(body, &fs); err != nil {
		t.Fatalf("form status json: %v body=%s", err, string(body))
	}
	return fs
}

// pollFormStatus polls GET /forms/{form} until want accepts the status or the
// deadline passes. Used where the daemon reacts to a socket event the test
// cannot observe directly (e.g. an editor disconnect).
func pollFormStatus(t *testing.T, base, form string, desc string, want func(types.FormStatus) bool) types.FormStatus {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	var last types.FormStatus
	for {
		last = getFormStatus(t, base, form)
		if want(last) {
			return last
		}
		if time.Now().After(deadline) {
			t.Fatalf("form %s never reached %s; last=%+v", form, desc, last)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// fakeEditor connects to /editor/ws and behaves like an embedded blocks
// editor: fire-and-forget calls mutate a tiny in-memory workspace, value
// calls are answered from that state, and every call frame is recorded for
// the test to inspect.
type fakeEditor struct {
	t    *testing.T
	conn *websocket.Conn

	attachedOnce sync.Once
	attached     chan struct{}
	closeOnce    sync.Once

	wmu sync.Mutex // gorilla allows one concurrent writer

	mu      sync.Mutex
	content string
	yail    string
	showing bool
	calls   []editorws.Envelope
	errs    []string
}

// dialEditor opens an editor connection for the form and starts the frame
// loop. The hello is sent immediately; use waitAttached to sync on replay
// completion.
func dialEditor(t *testing.T, server *httptest.Server, form string) *fakeEditor {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/editor/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial editor ws: %v", err)
	}
	ed := &fakeEditor{
		t:        t,
		conn:     conn,
		attached: make(chan struct{}),
		yail:     "(define-form " + form + ")",
	}
	t.Cleanup(ed.close)
	ed.send(editorws.Envelope{Type: editorws.TypeHello, Form: form})
	go ed.loop()
	return ed
}

func (e *fakeEditor) send(env editorws.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		return
	}
	e.wmu.Lock()
	defer e.wmu.Unlock()
	_ = e.conn.WriteMessage(websocket.TextMessage, data)
}

func (e *fakeEditor) loop() {
	for {
		_, data, err := e.conn.ReadMessage()
		if err != nil {
			return
		}
		var env editorws.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}
		switch env.Type {
		case editorws.TypeAttached:
			e.attachedOnce.Do(func() { close(e.attached) })
		case editorws.TypeError:
			e.mu.Lock()
			e.errs = append(e.errs, env.Error)
			e.mu.Unlock()
		case editorws.TypeCall:
			e.handleCall(env)
		}
	}
}

func (e *fakeEditor) handleCall(env editorws.Envelope) {
	e.mu.Lock()
	e.calls = append(e.calls, env)
	switch env.Method {
	case editorws.MethodContentLoad:
		var p editorws.LoadContentParams
		if err := json.Unmarshal(env.Params, &p); err == nil {
			e.content = p.Content
		}
	case editorws.MethodDrawerShowComponent, editorws.MethodDrawerShowBuiltin:
		e.showing = true
	case editorws.MethodDrawerHideComponent, editorws.MethodDrawerHideBuiltin:
		e.showing = false
	}
	content, yail, showing := e.content, e.yail, e.showing
	e.mu.Unlock()

	if env.ID == 0 {
		return
	}
	var result any
	switch env.Method {
	case editorws.MethodContentGet:
		result = editorws.ContentResult{Content: content}
	case editorws.MethodYailGet:
		result = editorws.YailResult{Yail: yail}
	case editorws.MethodDrawerShowing:
		result = editorws.DrawerShowingResult{Showing: showing}
	default:
		e.send(editorws.Envelope{Type: editorws.TypeResult, ID: env.ID, Error: "unexpected value call: " + env.Method})
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		e.send(editorws.Envelope{Type: editorws.TypeResult, ID: env.ID, Error: err.Error()})
		return
	}
	e.send(editorws.Envelope{Type: editorws.TypeResult, ID: env.ID, Result: raw})
}

func (e *fakeEditor) waitAttached() {
	e.t.Helper()
	select {
	case <-e.attached:
	case <-time.After(3 * time.Second):
		e.t.Fatalf("editor was not attached in time")
	}
}

// waitCalls blocks until at least n frames with the given method arrived and
// returns all of them.
func (e *fakeEditor) waitCalls(method string, n int) []editorws.Envelope {
	e.t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		got := e.callsOf(method)
		if len(got) >= n {
			return got
		}
		if time.Now().After(deadline) {
			e.t.Fatalf("expected %d %s calls, got %d", n, method, len(got))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (e *fakeEditor) callsOf(method string) []editorws.Envelope {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []editorws.Envelope
	for _, c := range e.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (e *fakeEditor) currentContent() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

func (e *fakeEditor) setYail(y string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.yail = y
}

// close performs a clean websocket shutdown, as an editor iframe being torn
// down would.
func (e *fakeEditor) close() {
	e.closeOnce.Do(func() {
		e.wmu.Lock()
		_ = e.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		e.wmu.Unlock()
		_ = e.conn.Close()
	})
}

// addParams decodes the AddComponentParams of a component_add frame.
func addParams(t *testing.T, env editorws.Envelope) editorws.AddComponentParams {
	t.Helper()
	var p editorws.AddComponentParams
	if err := json.Unmarshal(env.Params, &p); err != nil {
		t.Fatalf("decode component_add params: %v", err)
	}
	return p
}
