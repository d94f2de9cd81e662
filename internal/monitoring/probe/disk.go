package probe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/vietddude/nodepulse/internal/core/domain"
	"github.com/vietddude/nodepulse/internal/monitoring/metrics"
)

// UsageFunc reports filesystem usage for a path.
type UsageFunc func(ctx context.Context, path string) (*disk.UsageStat, error)

// DiskProbe reads capacity figures for the mount holding path.
type DiskProbe struct {
	path  string
	usage UsageFunc
	log   *slog.Logger
}

// NewDiskProbe creates a DiskProbe for path. An empty path means "/".
func NewDiskProbe(path string) *DiskProbe {
	return NewDiskProbeWithUsage(path, disk.UsageWithContext)
}

// NewDiskProbeWithUsage creates a DiskProbe with a custom usage source.
func NewDiskProbeWithUsage(path string, usage UsageFunc) *DiskProbe {
	if path == "" {
		path = "/"
	}
	return &DiskProbe{
		path:  path,
		usage: usage,
		log:   slog.Default().With("probe", metrics.ProbeDisk, "path", path),
	}
}

// Check returns storage figures in bytes, or nil when they can't be read.
func (p *DiskProbe) Check(ctx context.Context) *domain.StorageInfo {
	start := time.Now()
	info, err := p.read(ctx)
	observe(metrics.ProbeDisk, start, err != nil)
	if err != nil {
		p.log.Warn("Error fetching storage info", "error", err)
		return nil
	}

	metrics.DiskBytes.WithLabelValues("total").Set(float64(info.TotalBytes))
	metrics.DiskBytes.WithLabelValues("used").Set(float64(info.UsedBytes))
	metrics.DiskBytes.WithLabelValues("free").Set(float64(info.FreeBytes))
	return info
}

func (p *DiskProbe) read(ctx context.Context) (*domain.StorageInfo, error) {
	du, err := p.usage(ctx, p.path)
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}
	if du == nil {
		return nil, fmt.Errorf("disk usage: no data for %s", p.path)
	}
	return &domain.StorageInfo{
		TotalBytes: du.Total,
		UsedBytes:  du.Used,
		FreeBytes:  du.Free,
	}, nil
}
