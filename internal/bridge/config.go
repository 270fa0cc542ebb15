package bridge

import "github.com/rs/zerolog"

// Defaults applied by NewWithConfig when the corresponding BridgeConfig
// fields are unset.
const (
	// defaultPendingWarnThreshold is the queue depth at which a form that is
	// still buffering gets a high-water warning. The queue itself is
	// unbounded; the warning exists because an editor that never attaches
	// otherwise fails silently.
	defaultPendingWarnThreshold = 256
)

// BridgeConfig encapsulates all tunables for constructing a Bridge.
type BridgeConfig struct {
	// Logger receives structured bridge logs. Nil means no logging.
	Logger *zerolog.Logger

	// Publisher receives lifecycle events (form registered, editor attached,
	// reinit saved, ...). Nil means events are dropped.
	Publisher EventPublisher

	// PendingWarnThreshold is the buffered-operation count per form that
	// triggers a pending_ops_high_water event. Zero or negative selects
	// defaultPendingWarnThreshold.
	PendingWarnThreshold int
}
