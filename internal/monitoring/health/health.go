// Package health exposes the monitor's last cycle over HTTP.
package health

import "github.com/vietddude/nodepulse/internal/core/domain"

// SystemStatus represents the node's state as of the last cycle.
type SystemStatus string

const (
	StatusHealthy   SystemStatus = "healthy"
	StatusUnhealthy SystemStatus = "unhealthy"
	StatusPending   SystemStatus = "pending"
)

// ReportSource provides the most recent cycle report.
type ReportSource interface {
	LastReport() (domain.CycleReport, bool)
}

// StatusOf classifies a report; ok is false when no cycle has run yet.
func StatusOf(rep domain.CycleReport, ok bool) SystemStatus {
	switch {
	case !ok:
		return StatusPending
	case rep.NodeOK:
		return StatusHealthy
	default:
		return StatusUnhealthy
	}
}
