package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CyclesTotal tracks completed monitor cycles
	CyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nodepulse_cycles_total",
			Help: "Total number of completed monitor cycles",
		},
	)

	// ProbeFailuresTotal tracks failed probes
	ProbeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodepulse_probe_failures_total",
			Help: "Total number of failed probes",
		},
		[]string{"probe"},
	)

	// ProbeLatency tracks probe duration
	ProbeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nodepulse_probe_latency_seconds",
			Help:    "Probe latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"probe"},
	)

	// NotificationsTotal tracks delivery attempts by result
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodepulse_notifications_total",
			Help: "Total number of notification attempts",
		},
		[]string{"result"},
	)

	// ProvenBlock is the last healthy proven block number reported by the node
	ProvenBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nodepulse_node_proven_block",
			Help: "Latest proven block number reported by the node",
		},
	)

	// NodeHealthy is 1 when the last cycle classified the node as healthy
	NodeHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nodepulse_node_healthy",
			Help: "Whether the node was healthy at the last cycle (1 or 0)",
		},
	)

	// DiskBytes tracks the monitored mount's capacity
	DiskBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nodepulse_disk_bytes",
			Help: "Disk capacity of the monitored path in bytes",
		},
		[]string{"kind"},
	)
)

// Probe names used as label values.
const (
	ProbeStatus = "status"
	ProbeDisk   = "disk"
	ProbeIP     = "ip"
)
