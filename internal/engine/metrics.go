package engine

import "github.com/prometheus/client_golang/prometheus"

var engineCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "llmtools",
		Subsystem: "engine",
		Name:      "calls_total",
		Help:      "Container engine calls by operation and result",
	},
	[]string{"op", "result"},
)

func init() {
	prometheus.MustRegister(engineCalls)
}

func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	engineCalls.WithLabelValues(op, result).Inc()
}
