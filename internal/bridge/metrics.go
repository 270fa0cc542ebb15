package bridge

import "github.com/prometheus/client_golang/prometheus"

var (
	formsRegistered = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "forms_registered",
		Help:      "Number of forms currently registered with the bridge.",
	})

	formsReady = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "forms_ready",
		Help:      "Number of registered forms whose editor is initialized.",
	})

	pendingOpsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "pending_ops",
		Help:      "Total component operations buffered across all forms.",
	})

	opsBuffered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "ops_buffered_total",
		Help:      "Component operations queued while an editor was initializing.",
	}, []string{"op"})

	opsApplied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "ops_applied_total",
		Help:      "Component operations applied to a live editor, directly or via replay.",
	}, []string{"op"})

	replays = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "replays_total",
		Help:      "Editor attach replays performed.",
	})

	consistencyWarnings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksd",
		Subsystem: "bridge",
		Name:      "consistency_warnings_total",
		Help:      "Operations whose snapshot precondition failed and were skipped.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(
		formsRegistered,
		formsReady,
		pendingOpsGauge,
		opsBuffered,
		opsApplied,
		replays,
		consistencyWarnings,
	)
}
