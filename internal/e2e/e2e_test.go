package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"blocksd/internal/editorws"
	"blocksd/pkg/types"
)

// TestE2E_RegisterBufferReplay walks the primary designer flow: a form is
// registered and populated before its editor exists, then a connecting
// editor receives the buffered operations and the cached workspace content
// in order.
func TestE2E_RegisterBufferReplay(t *testing.T) {
	dir := createTempCatalogDir(t, "Button")
	srv := newServer(t, dir)

	// 1) Register the form; it starts out buffering.
	registerForm(t, srv.URL, "Screen1")
	fs := getFormStatus(t, srv.URL, "Screen1")
	if fs.Ready || fs.EditorAttached {
		t.Fatalf("fresh form should be loading and detached: %+v", fs)
	}

	// 2) Add one component via the catalog and one with an inline descriptor.
	resp, body := httpPostJSON(t, srv.URL+"/forms/Screen1/components", []byte(`{"uid":"1","name":"Button1","type":"Button"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("add via catalog: status=%d body=%s", resp.StatusCode, string(body)) }
	inline, err := json.Marshal(types.ComponentAddRequest{UID: "2", Name: "Canvas1", TypeDescription: `{"type":"Canvas","version":3}`})
	if err != nil { t.Fatalf("marshal add request: %v", err) }
	resp, body = httpPostJSON(t, srv.URL+"/forms/Screen1/components", inline)
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("add inline: status=%d body=%s", resp.StatusCode, string(body)) }

	fs = getFormStatus(t, srv.URL, "Screen1")
	if fs.PendingOps != 2 || fs.Components != 0 {
		t.Fatalf("expected 2 buffered ops and empty snapshot, got %+v", fs)
	}

	// 3) Upload workspace content; it is cached, and readable back.
	const blocks = `<xml><block type="component_event"/></xml>`
	resp, body = httpPut(t, srv.URL+"/forms/Screen1/blocks", "text/plain", []byte(blocks))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("put blocks: status=%d body=%s", resp.StatusCode, string(body)) }
	resp, body = httpGet(t, srv.URL+"/forms/Screen1/blocks")
	if resp.StatusCode != http.StatusOK || string(body) != blocks {
		t.Fatalf("get cached blocks: status=%d body=%q", resp.StatusCode, string(body))
	}

	// 4) Connect the editor. Replay delivers the adds in submit order, then
	//    the cached content.
	ed := dialEditor(t, srv, "Screen1")
	ed.waitAttached()

	adds := ed.waitCalls(editorws.MethodComponentAdd, 2)
	p0, p1 := addParams(t, adds[0]), addParams(t, adds[1])
	if p0.UID != "1" || !strings.Contains(p0.TypeDescription, "Button") {
		t.Fatalf("first replayed add wrong: %+v", p0)
	}
	if p1.UID != "2" || !strings.Contains(p1.TypeDescription, "Canvas") {
		t.Fatalf("second replayed add wrong: %+v", p1)
	}
	ed.waitCalls(editorws.MethodContentLoad, 1)
	if got := ed.currentContent(); got != blocks {
		t.Fatalf("editor content after replay: %q", got)
	}

	// 5) The form is now ready with the replayed ops folded into the snapshot.
	fs = getFormStatus(t, srv.URL, "Screen1")
	if !fs.Ready || !fs.EditorAttached || fs.PendingOps != 0 || fs.Components != 2 || fs.HasPendingContent {
		t.Fatalf("post-attach status wrong: %+v", fs)
	}

	// 6) Yail generation works against the live editor.
	resp, body = httpGet(t, srv.URL+"/forms/Screen1/yail")
	if resp.StatusCode != http.StatusOK { t.Fatalf("yail: status=%d body=%s", resp.StatusCode, string(body)) }
	if !strings.Contains(string(body), "(define-form Screen1)") {
		t.Fatalf("yail body: %q", string(body))
	}
}

// TestE2E_YailConflictUntilEditorConnects checks the typed not-initialized
// failure surfaces as 409 until an editor attaches.
func TestE2E_YailConflictUntilEditorConnects(t *testing.T) {
	srv := newServer(t, "")
	registerForm(t, srv.URL, "Screen1")

	resp, body := httpGet(t, srv.URL+"/forms/Screen1/yail")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("yail while loading: expected 409, got %d body=%s", resp.StatusCode, string(body))
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		t.Fatalf("error response json: %v body=%s", err, string(body))
	}
	if !strings.Contains(er.Error, "not initialized") {
		t.Fatalf("unexpected error message: %q", er.Error)
	}

	ed := dialEditor(t, srv, "Screen1")
	ed.waitAttached()
	ed.setYail("(define-form Screen1 ready)")

	resp, body = httpGet(t, srv.URL+"/forms/Screen1/yail")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "ready") {
		t.Fatalf("yail after attach: status=%d body=%s", resp.StatusCode, string(body))
	}
}

// TestE2E_ReinitCarriesContentToNextEditor drives a full reinitialization
// cycle: capture from the live editor, buffer while the surface is rebuilt,
// replay snapshot plus buffered ops into the replacement editor.
func TestE2E_ReinitCarriesContentToNextEditor(t *testing.T) {
	dir := createTempCatalogDir(t, "Button")
	srv := newServer(t, dir)
	registerForm(t, srv.URL, "Screen1")

	// 1) First editor attaches; one component and some content go in live.
	ed1 := dialEditor(t, srv, "Screen1")
	ed1.waitAttached()
	resp, body := httpPostJSON(t, srv.URL+"/forms/Screen1/components", []byte(`{"uid":"1","name":"Button1","type":"Button"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("live add: status=%d body=%s", resp.StatusCode, string(body)) }
	ed1.waitCalls(editorws.MethodComponentAdd, 1)

	const contentV1 = `<xml version="1"/>`
	resp, body = httpPut(t, srv.URL+"/forms/Screen1/blocks", "text/plain", []byte(contentV1))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("live put blocks: status=%d body=%s", resp.StatusCode, string(body)) }
	ed1.waitCalls(editorws.MethodContentLoad, 1)

	// 2) Reinit: the daemon captures the workspace from the live editor and
	//    re-arms buffering.
	resp, body = httpPostJSON(t, srv.URL+"/forms/Screen1/reinit", nil)
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("reinit: status=%d body=%s", resp.StatusCode, string(body)) }
	fs := getFormStatus(t, srv.URL, "Screen1")
	if fs.Ready || !fs.HasPendingContent {
		t.Fatalf("post-reinit status wrong: %+v", fs)
	}

	// 3) An op arriving during the window buffers instead of reaching ed1.
	resp, body = httpPostJSON(t, srv.URL+"/forms/Screen1/components", []byte(`{"uid":"2","name":"Button2","type":"Button"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("buffered add: status=%d body=%s", resp.StatusCode, string(body)) }
	fs = getFormStatus(t, srv.URL, "Screen1")
	if fs.PendingOps != 1 {
		t.Fatalf("expected 1 buffered op, got %+v", fs)
	}

	// 4) Old surface goes away, replacement connects.
	ed1.close()
	pollFormStatus(t, srv.URL, "Screen1", "detached", func(fs types.FormStatus) bool { return !fs.EditorAttached })

	ed2 := dialEditor(t, srv, "Screen1")
	ed2.waitAttached()

	// Snapshot add first, then the buffered one, then the captured content.
	adds := ed2.waitCalls(editorws.MethodComponentAdd, 2)
	if p := addParams(t, adds[0]); p.UID != "1" {
		t.Fatalf("snapshot replay should come first, got uid %q", p.UID)
	}
	if p := addParams(t, adds[1]); p.UID != "2" {
		t.Fatalf("buffered op should follow snapshot, got uid %q", p.UID)
	}
	ed2.waitCalls(editorws.MethodContentLoad, 1)
	if got := ed2.currentContent(); got != contentV1 {
		t.Fatalf("captured content not restored: %q", got)
	}

	fs = getFormStatus(t, srv.URL, "Screen1")
	if !fs.Ready || fs.Components != 2 || fs.PendingOps != 0 || fs.HasPendingContent {
		t.Fatalf("post-reattach status wrong: %+v", fs)
	}
}

// TestE2E_DisconnectRearmsBuffering verifies a dropped editor flips the form
// back to buffering and a reconnect replays the accumulated state.
func TestE2E_DisconnectRearmsBuffering(t *testing.T) {
	dir := createTempCatalogDir(t, "Button")
	srv := newServer(t, dir)
	registerForm(t, srv.URL, "Screen1")

	ed1 := dialEditor(t, srv, "Screen1")
	ed1.waitAttached()
	resp, body := httpPostJSON(t, srv.URL+"/forms/Screen1/components", []byte(`{"uid":"1","name":"Button1","type":"Button"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("live add: status=%d body=%s", resp.StatusCode, string(body)) }
	ed1.waitCalls(editorws.MethodComponentAdd, 1)

	ed1.close()
	pollFormStatus(t, srv.URL, "Screen1", "loading after disconnect", func(fs types.FormStatus) bool {
		return !fs.EditorAttached && !fs.Ready
	})

	resp, body = httpPostJSON(t, srv.URL+"/forms/Screen1/components", []byte(`{"uid":"2","name":"Button2","type":"Button"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("buffered add: status=%d body=%s", resp.StatusCode, string(body)) }

	ed2 := dialEditor(t, srv, "Screen1")
	ed2.waitAttached()
	adds := ed2.waitCalls(editorws.MethodComponentAdd, 2)
	if p := addParams(t, adds[0]); p.UID != "1" {
		t.Fatalf("snapshot uid: %q", p.UID)
	}
	if p := addParams(t, adds[1]); p.UID != "2" {
		t.Fatalf("buffered uid: %q", p.UID)
	}

	fs := getFormStatus(t, srv.URL, "Screen1")
	if !fs.Ready || fs.Components != 2 {
		t.Fatalf("post-reconnect status wrong: %+v", fs)
	}
}

// TestE2E_DrawerRoundTrip exercises the fire-and-forget drawer calls and the
// drawer_showing value call against a live editor.
func TestE2E_DrawerRoundTrip(t *testing.T) {
	dir := createTempCatalogDir(t, "Button")
	srv := newServer(t, dir)
	registerForm(t, srv.URL, "Screen1")
	ed := dialEditor(t, srv, "Screen1")
	ed.waitAttached()

	resp, body := httpPostJSON(t, srv.URL+"/forms/Screen1/drawer", []byte(`{"action":"show_component","name":"Button1"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("show drawer: status=%d body=%s", resp.StatusCode, string(body)) }

	// drawer_showing is answered after the show frame on the same socket, so
	// the reply reflects it.
	resp, body = httpGet(t, srv.URL+"/forms/Screen1/drawer")
	if resp.StatusCode != http.StatusOK { t.Fatalf("drawer status: status=%d body=%s", resp.StatusCode, string(body)) }
	var ds types.DrawerStatus
	if err := json.Unmarshal(body, &ds); err != nil {
		t.Fatalf("drawer status json: %v body=%s", err, string(body))
	}
	if !ds.Showing {
		t.Fatalf("drawer should be showing")
	}

	resp, body = httpPostJSON(t, srv.URL+"/forms/Screen1/drawer", []byte(`{"action":"hide_component"}`))
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("hide drawer: status=%d body=%s", resp.StatusCode, string(body)) }
	resp, body = httpGet(t, srv.URL+"/forms/Screen1/drawer")
	if resp.StatusCode != http.StatusOK { t.Fatalf("drawer status: status=%d body=%s", resp.StatusCode, string(body)) }
	if err := json.Unmarshal(body, &ds); err != nil {
		t.Fatalf("drawer status json: %v body=%s", err, string(body))
	}
	if ds.Showing {
		t.Fatalf("drawer should be hidden")
	}
}

// TestE2E_StatusAggregatesAndReadyz covers the fleet-level views while forms
// are in mixed states.
func TestE2E_StatusAggregatesAndReadyz(t *testing.T) {
	srv := newServer(t, "")
	registerForm(t, srv.URL, "Screen1")
	registerForm(t, srv.URL, "Screen2")

	ed1 := dialEditor(t, srv, "Screen1")
	ed1.waitAttached()

	resp, body := httpGet(t, srv.URL+"/status")
	if resp.StatusCode != http.StatusOK { t.Fatalf("/status: status=%d body=%s", resp.StatusCode, string(body)) }
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("/status json: %v body=%s", err, string(body))
	}
	if st.RegisteredForms != 2 || st.ReadyForms != 1 {
		t.Fatalf("/status aggregates wrong: %+v", st)
	}
	if len(st.Forms) != 2 || st.Forms[0].Name != "Screen1" || st.Forms[1].Name != "Screen2" {
		t.Fatalf("/status forms wrong: %+v", st.Forms)
	}

	resp, body = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("/readyz with a loading form: expected 503, got %d body=%s", resp.StatusCode, string(body))
	}

	ed2 := dialEditor(t, srv, "Screen2")
	ed2.waitAttached()
	resp, body = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/readyz all ready: expected 200, got %d body=%s", resp.StatusCode, string(body))
	}
}

// TestE2E_UnregisterDropsForm removes a form and checks every surface stops
// knowing it.
func TestE2E_UnregisterDropsForm(t *testing.T) {
	srv := newServer(t, "")
	registerForm(t, srv.URL, "Screen1")

	resp, body := httpDelete(t, srv.URL+"/forms/Screen1")
	if resp.StatusCode != http.StatusNoContent { t.Fatalf("unregister: status=%d body=%s", resp.StatusCode, string(body)) }

	resp, body = httpGet(t, srv.URL+"/forms/Screen1")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("form status after unregister: expected 404, got %d body=%s", resp.StatusCode, string(body))
	}
	resp, body = httpGet(t, srv.URL+"/status")
	if resp.StatusCode != http.StatusOK { t.Fatalf("/status: status=%d", resp.StatusCode) }
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("/status json: %v body=%s", err, string(body))
	}
	if st.RegisteredForms != 0 {
		t.Fatalf("expected no registered forms, got %+v", st)
	}
}

// TestE2E_HelloForUnknownFormRejected checks the hub refuses editors for
// forms the designer never registered.
func TestE2E_HelloForUnknownFormRejected(t *testing.T) {
	srv := newServer(t, "")

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/editor/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil { t.Fatalf("dial: %v", err) }
	defer conn.Close()

	hello, err := json.Marshal(editorws.Envelope{Type: editorws.TypeHello, Form: "Ghost"})
	if err != nil { t.Fatalf("marshal hello: %v", err) }
	if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
		t.Fatalf("send hello: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil { t.Fatalf("read error frame: %v", err) }
	var env editorws.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode error frame: %v data=%s", err, string(data))
	}
	if env.Type != editorws.TypeError || !strings.Contains(env.Error, "form not registered") {
		t.Fatalf("expected rejection frame, got %+v", env)
	}
}
