package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vietddude/nodepulse/internal/core/domain"
	"github.com/vietddude/nodepulse/internal/monitoring/metrics"
)

// MethodL2Tips is the node RPC method reporting chain tips.
const MethodL2Tips = "node_getL2Tips"

var errNoProvenNumber = errors.New("result.proven.number missing")

// Caller makes JSON-RPC calls.
type Caller interface {
	Call(ctx context.Context, method string, params []any) (any, error)
}

// StatusProbe asks the node for its latest proven block.
type StatusProbe struct {
	rpc Caller
	log *slog.Logger
}

// NewStatusProbe creates a StatusProbe using rpc.
func NewStatusProbe(rpc Caller) *StatusProbe {
	return &StatusProbe{
		rpc: rpc,
		log: slog.Default().With("probe", metrics.ProbeStatus),
	}
}

// Check returns the node status. BlockNumber is nil when the node can't be
// reached or its answer lacks result.proven.number.
func (p *StatusProbe) Check(ctx context.Context) domain.NodeStatus {
	start := time.Now()
	number, err := p.provenNumber(ctx)
	observe(metrics.ProbeStatus, start, err != nil)
	if err != nil {
		p.log.Warn("Error fetching node status", "error", err)
		return domain.NodeStatus{}
	}
	return domain.NodeStatus{BlockNumber: number}
}

func (p *StatusProbe) provenNumber(ctx context.Context) (any, error) {
	result, err := p.rpc.Call(ctx, MethodL2Tips, []any{})
	if err != nil {
		return nil, err
	}

	tips, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected result type %T", result)
	}
	proven, ok := tips["proven"].(map[string]any)
	if !ok {
		return nil, errNoProvenNumber
	}
	number, ok := proven["number"]
	if !ok || number == nil {
		return nil, errNoProvenNumber
	}
	return number, nil
}
