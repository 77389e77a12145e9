// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "teamtally"

// Metrics holds every collector. Create it once with New.
type Metrics struct {
	// RPCRequests counts handled RPCs by procedure and Connect code.
	RPCRequests *prometheus.CounterVec

	// RPCDuration observes RPC latency in seconds by procedure.
	RPCDuration *prometheus.HistogramVec

	// OverduePercent is the share of a group's tasks that are overdue.
	OverduePercent *prometheus.GaugeVec

	// OverdueTasks is the number of overdue tasks in a group.
	OverdueTasks *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Number of RPCs handled, by procedure and status code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		OverduePercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "group_overdue_percent",
			Help:      "Percentage of a group's tasks that are pending past their deadline.",
		}, []string{"group_id"}),
		OverdueTasks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "group_overdue_tasks",
			Help:      "Number of a group's tasks that are pending past their deadline.",
		}, []string{"group_id"}),
	}
	reg.MustRegister(m.RPCRequests, m.RPCDuration, m.OverduePercent, m.OverdueTasks)
	return m
}
