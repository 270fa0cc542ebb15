package bridge

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Bridge relays structural operations from the host designer to the embedded
// blocks editors, one editor per form. While a form's editor has not finished
// its asynchronous initialization the bridge buffers operations and workspace
// content; Attach replays everything once the editor is up.
type Bridge struct {
	mu    sync.RWMutex
	forms map[string]*form

	log           zerolog.Logger
	publisher     EventPublisher
	warnThreshold int
	startTime     time.Time
}

// form is the per-instance synchronizer state. pending doubles as the
// readiness flag: a non-nil slice means the editor has not (re)initialized yet
// and operations are queued; nil means the editor is live and operations are
// relayed directly.
type form struct {
	name       string
	editor     Editor
	pending    []ComponentOp
	components map[string]*component

	// pendingContent is workspace content waiting for the next editor
	// initialization. The pointer distinguishes "nothing cached" from an
	// explicitly cached empty workspace, which must still be loaded.
	pendingContent *string

	// warned is set once the pending queue crosses the high-water threshold,
	// so the warning fires at most once per buffering cycle.
	warned bool
}

// component is one snapshot entry: the add-shaped record of a component
// currently present in the form. The snapshot is replayed into a fresh editor
// to rebuild its component state after reinitialization.
type component struct {
	uid             string
	name            string
	typeDescription string
}

// New constructs a Bridge with default configuration.
func New() *Bridge {
	return NewWithConfig(BridgeConfig{})
}

// NewWithConfig constructs a Bridge honoring the provided configuration.
// Zero-valued fields fall back to package defaults.
func NewWithConfig(cfg BridgeConfig) *Bridge {
	b := &Bridge{
		forms:         make(map[string]*form),
		log:           zerolog.Nop(),
		publisher:     noopPublisher{},
		warnThreshold: cfg.PendingWarnThreshold,
		startTime:     time.Now(),
	}
	if cfg.Logger != nil {
		b.log = *cfg.Logger
	}
	if cfg.Publisher != nil {
		b.publisher = cfg.Publisher
	}
	if b.warnThreshold <= 0 {
		b.warnThreshold = defaultPendingWarnThreshold
	}
	return b
}

// SetEventPublisher replaces the event publisher. Intended for wiring during
// startup or in tests; not safe to call concurrently with operations.
func (b *Bridge) SetEventPublisher(pub EventPublisher) {
	if pub == nil {
		pub = noopPublisher{}
	}
	b.publisher = pub
}

// Ready reports whether the named form's editor has completed initialization.
// Unknown forms report false.
func (b *Bridge) Ready(formName string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f := b.forms[formName]
	return f != nil && f.pending == nil
}

// Forms returns the names of all registered forms, sorted.
func (b *Bridge) Forms() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.forms))
	for name := range b.forms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// refreshGauges recomputes the form-level metric gauges. Callers must hold
// b.mu (read or write).
func (b *Bridge) refreshGauges() {
	var ready, pending int
	for _, f := range b.forms {
		if f.pending == nil {
			ready++
		}
		pending += len(f.pending)
	}
	formsRegistered.Set(float64(len(b.forms)))
	formsReady.Set(float64(ready))
	pendingOpsGauge.Set(float64(pending))
}
