package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// MaxProvenBlock is the upper sanity bound for a healthy proven block number.
const MaxProvenBlock = 99999

// NodeStatus is the node's answer to node_getL2Tips.
type NodeStatus struct {
	// BlockNumber is the raw JSON value of result.proven.number, nil when absent.
	BlockNumber any
}

// ProvenBlock returns the proven block number and whether the node is healthy.
// Only integers in [0, MaxProvenBlock] count; floats, strings, booleans and
// absent values do not.
func (s NodeStatus) ProvenBlock() (int64, bool) {
	var n int64
	switch v := s.BlockNumber.(type) {
	case json.Number:
		parsed, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		n = int64(v)
	default:
		return 0, false
	}
	if n < 0 || n > MaxProvenBlock {
		return 0, false
	}
	return n, true
}

// StorageInfo holds capacity figures for a single mount, in bytes.
type StorageInfo struct {
	TotalBytes uint64 `json:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes"`
	FreeBytes  uint64 `json:"free_bytes"`
}

// PublicIP is the host's address as seen from the internet.
type PublicIP string

// IPUnavailable is reported when the reflection service can't be reached.
const IPUnavailable PublicIP = "Unavailable"

// BlockNumberUnavailable is shown in place of a block number for an unhealthy node.
const BlockNumberUnavailable = "N/A"
