package control

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vietddude/nodepulse/internal/core/domain"
	"github.com/vietddude/nodepulse/internal/monitoring/metrics"
	"github.com/vietddude/nodepulse/internal/monitoring/report"
)

// Monitor runs probe, format and notify cycles on a fixed interval.
type Monitor struct {
	nodeID   string
	interval time.Duration

	status   StatusChecker
	storage  StorageChecker
	ip       IPChecker
	notifier Notifier

	mu   sync.RWMutex
	last *domain.CycleReport

	log *slog.Logger
}

// NewMonitor creates a Monitor. A nil notifier disables delivery.
func NewMonitor(
	nodeID string,
	interval time.Duration,
	status StatusChecker,
	storage StorageChecker,
	ip IPChecker,
	notifier Notifier,
) *Monitor {
	return &Monitor{
		nodeID:   nodeID,
		interval: interval,
		status:   status,
		storage:  storage,
		ip:       ip,
		notifier: notifier,
		log:      slog.Default().With("node", nodeID),
	}
}

// Interval returns the pause between cycles.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// Run executes cycles until ctx is cancelled. Cycles never overlap.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		m.RunCycle(ctx)

		timer := time.NewTimer(m.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// RunCycle probes, formats and delivers exactly one status message. Probe and
// delivery failures only degrade the message.
func (m *Monitor) RunCycle(ctx context.Context) domain.CycleReport {
	rep := domain.CycleReport{
		CycleID:   uuid.NewString(),
		NodeID:    m.nodeID,
		StartedAt: time.Now(),
	}
	log := m.log.With("cycle_id", rep.CycleID)

	// 1. Probes
	status := m.status.Check(ctx)
	rep.Storage = m.storage.Check(ctx)
	rep.PublicIP = m.ip.Check(ctx)

	// 2. Classify
	block, ok := status.ProvenBlock()
	rep.NodeOK = ok
	rep.BlockNumber = domain.BlockNumberUnavailable
	if ok {
		rep.BlockNumber = strconv.FormatInt(block, 10)
		metrics.ProvenBlock.Set(float64(block))
		metrics.NodeHealthy.Set(1)
	} else {
		metrics.NodeHealthy.Set(0)
		log.Debug("Node classified unhealthy", "block_number", status.BlockNumber)
	}

	// 3. Format
	rep.Message = report.Format(report.Status{
		NodeID:      m.nodeID,
		BlockNumber: rep.BlockNumber,
		PublicIP:    rep.PublicIP,
		Storage:     rep.Storage,
		NodeOK:      rep.NodeOK,
	})

	// 4. Deliver
	if m.notifier != nil {
		rep.Delivered = m.notifier.Send(ctx, rep.Message)
		result := "failure"
		if rep.Delivered {
			result = "success"
		}
		metrics.NotificationsTotal.WithLabelValues(result).Inc()
	}

	rep.FinishedAt = time.Now()
	metrics.CyclesTotal.Inc()
	log.Debug("Cycle complete",
		"node_ok", rep.NodeOK,
		"delivered", rep.Delivered,
		"duration", rep.FinishedAt.Sub(rep.StartedAt),
	)

	m.mu.Lock()
	m.last = &rep
	m.mu.Unlock()

	return rep
}

// LastReport returns the most recent cycle's report.
func (m *Monitor) LastReport() (domain.CycleReport, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return domain.CycleReport{}, false
	}
	return *m.last, true
}
