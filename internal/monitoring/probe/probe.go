// Package probe collects the data points reported each cycle. Every probe
// returns a value, possibly absent, and logs instead of returning errors.
package probe

import (
	"time"

	"github.com/vietddude/nodepulse/internal/monitoring/metrics"
)

func observe(probe string, start time.Time, failed bool) {
	metrics.ProbeLatency.WithLabelValues(probe).Observe(time.Since(start).Seconds())
	if failed {
		metrics.ProbeFailuresTotal.WithLabelValues(probe).Inc()
	}
}
