package bridge

import (
	"fmt"
	"sync"
	"testing"
)

// fakeEditor implements Editor in memory and records every call in order so
// tests can assert on exact relay and replay sequences.
type fakeEditor struct {
	mu    sync.Mutex
	calls []string

	content string
	showing bool
	yail    string

	opErr      error // returned by add/remove/rename and drawer calls
	loadErr    error
	contentErr error
	yailErr    error
}

func (f *fakeEditor) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// takeCalls returns the recorded calls and clears the log.
func (f *fakeEditor) takeCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.calls
	f.calls = nil
	return out
}

func (f *fakeEditor) AddComponent(typeDescription, name, uid string) error {
	f.record("add %s %s %s", uid, name, typeDescription)
	return f.opErr
}

func (f *fakeEditor) RemoveComponent(typeName, name, uid string) error {
	f.record("remove %s %s %s", uid, name, typeName)
	return f.opErr
}

func (f *fakeEditor) RenameComponent(typeName, oldName, newName, uid string) error {
	f.record("rename %s %s->%s", uid, oldName, newName)
	return f.opErr
}

func (f *fakeEditor) ShowComponentDrawer(name string) error {
	f.record("show-component %s", name)
	if f.opErr == nil {
		f.mu.Lock()
		f.showing = true
		f.mu.Unlock()
	}
	return f.opErr
}

func (f *fakeEditor) HideComponentDrawer() error {
	f.record("hide-component")
	if f.opErr == nil {
		f.mu.Lock()
		f.showing = false
		f.mu.Unlock()
	}
	return f.opErr
}

func (f *fakeEditor) ShowBuiltinDrawer(name string) error {
	f.record("show-builtin %s", name)
	if f.opErr == nil {
		f.mu.Lock()
		f.showing = true
		f.mu.Unlock()
	}
	return f.opErr
}

func (f *fakeEditor) HideBuiltinDrawer() error {
	f.record("hide-builtin")
	if f.opErr == nil {
		f.mu.Lock()
		f.showing = false
		f.mu.Unlock()
	}
	return f.opErr
}

func (f *fakeEditor) DrawerShowing() (bool, error) {
	f.record("drawer-showing")
	if f.opErr != nil {
		return false, f.opErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showing, nil
}

func (f *fakeEditor) LoadContent(content string) error {
	f.record("load %q", content)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.mu.Lock()
	f.content = content
	f.mu.Unlock()
	return nil
}

func (f *fakeEditor) Content() (string, error) {
	f.record("content")
	if f.contentErr != nil {
		return "", f.contentErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content, nil
}

func (f *fakeEditor) GenerateYail() (string, error) {
	f.record("yail")
	if f.yailErr != nil {
		return "", f.yailErr
	}
	return f.yail, nil
}

// snapshotNames returns the uid -> current name view of a form's component
// snapshot.
func snapshotNames(t *testing.T, b *Bridge, formName string) map[string]string {
	t.Helper()
	b.mu.RLock()
	defer b.mu.RUnlock()
	f := b.forms[formName]
	if f == nil {
		t.Fatalf("form %q not registered", formName)
	}
	out := make(map[string]string, len(f.components))
	for uid, c := range f.components {
		out[uid] = c.name
	}
	return out
}

// cachedContent returns the form's pending content cache, or nil if nothing
// is cached.
func cachedContent(t *testing.T, b *Bridge, formName string) *string {
	t.Helper()
	b.mu.RLock()
	defer b.mu.RUnlock()
	f := b.forms[formName]
	if f == nil {
		t.Fatalf("form %q not registered", formName)
	}
	return f.pendingContent
}

func expectCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d editor calls %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("editor call %d: expected %q, got %q (all: %v)", i, want[i], got[i], got)
		}
	}
}
