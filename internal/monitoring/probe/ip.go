package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vietddude/nodepulse/internal/core/domain"
	"github.com/vietddude/nodepulse/internal/monitoring/metrics"
)

// IPProbe asks an IP reflection service for the host's public address.
type IPProbe struct {
	url  string
	http *http.Client
	log  *slog.Logger
}

// NewIPProbe creates an IPProbe querying url, giving up after timeout.
func NewIPProbe(url string, timeout time.Duration) *IPProbe {
	return &IPProbe{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  slog.Default().With("probe", metrics.ProbeIP),
	}
}

// Check returns the public IP, or domain.IPUnavailable on any failure.
func (p *IPProbe) Check(ctx context.Context) domain.PublicIP {
	start := time.Now()
	ip, err := p.fetch(ctx)
	observe(metrics.ProbeIP, start, err != nil)
	if err != nil {
		p.log.Warn("Error fetching public IP", "error", err)
		return domain.IPUnavailable
	}
	return ip
}

func (p *IPProbe) fetch(ctx context.Context) (domain.PublicIP, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("get public ip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ip service status %d", resp.StatusCode)
	}

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if body.IP == "" {
		return "", fmt.Errorf("ip field missing")
	}
	return domain.PublicIP(body.IP), nil
}
