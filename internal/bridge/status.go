package bridge

import (
	"sort"
	"time"

	"blocksd/pkg/types"
)

// Status reports per-form synchronizer state plus aggregate counters for the
// status endpoint.
func (b *Bridge) Status() types.StatusResponse {
	b.mu.RLock()
	defer b.mu.RUnlock()

	resp := types.StatusResponse{
		Forms:          make([]types.FormStatus, 0, len(b.forms)),
		ServerTimeUnix: time.Now().Unix(),
		UptimeSeconds:  int64(time.Since(b.startTime).Seconds()),
	}
	for _, f := range b.forms {
		st := formStatusLocked(f)
		if st.Ready {
			resp.ReadyForms++
		}
		resp.TotalPendingOps += st.PendingOps
		resp.Forms = append(resp.Forms, st)
	}
	resp.RegisteredForms = len(b.forms)
	sort.Slice(resp.Forms, func(i, j int) bool { return resp.Forms[i].Name < resp.Forms[j].Name })
	return resp
}

// FormStatus reports the synchronizer state of a single form.
func (b *Bridge) FormStatus(formName string) (types.FormStatus, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f := b.forms[formName]
	if f == nil {
		return types.FormStatus{}, ErrFormNotFound(formName)
	}
	return formStatusLocked(f), nil
}

func formStatusLocked(f *form) types.FormStatus {
	return types.FormStatus{
		Name:              f.name,
		Ready:             f.pending == nil,
		EditorAttached:    f.editor != nil,
		PendingOps:        len(f.pending),
		Components:        len(f.components),
		HasPendingContent: f.pendingContent != nil,
	}
}
