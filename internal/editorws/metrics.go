package editorws

import "github.com/prometheus/client_golang/prometheus"

var editorsConnected = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "blocksd",
	Subsystem: "editorws",
	Name:      "editors_connected",
	Help:      "Number of editor WebSocket connections currently registered.",
})

func init() {
	prometheus.MustRegister(editorsConnected)
}
