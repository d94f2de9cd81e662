package control

import (
	"context"

	"github.com/vietddude/nodepulse/internal/core/domain"
)

// StatusChecker reports the node's proven block.
type StatusChecker interface {
	Check(ctx context.Context) domain.NodeStatus
}

// StorageChecker reports disk capacity; nil means unavailable.
type StorageChecker interface {
	Check(ctx context.Context) *domain.StorageInfo
}

// IPChecker reports the host's public IP or domain.IPUnavailable.
type IPChecker interface {
	Check(ctx context.Context) domain.PublicIP
}

// Notifier delivers a status message and reports whether it was accepted.
type Notifier interface {
	Send(ctx context.Context, msg string) bool
}
