// Package report renders cycle results as the Telegram status message.
package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/vietddude/nodepulse/internal/core/domain"
)

const (
	healthyMarker   = "✅"
	unhealthyMarker = "❌"

	bytesPerGB = 1 << 30
)

// Status is everything one message is built from.
type Status struct {
	NodeID      string
	BlockNumber string
	PublicIP    domain.PublicIP
	Storage     *domain.StorageInfo
	NodeOK      bool
}

// Format renders s. It is pure: equal inputs give byte-identical output.
func Format(s Status) string {
	var b strings.Builder

	if s.NodeOK {
		b.WriteString(healthyMarker + " [Node " + s.NodeID + "] Node is running fine.\n")
		b.WriteString("Block number: " + s.BlockNumber + "\n")
	} else {
		b.WriteString(unhealthyMarker + " [Node " + s.NodeID + "] Node is NOT running properly or returned invalid data.\n")
	}

	b.WriteString("Public IP: " + string(s.PublicIP) + "\n")

	if s.Storage == nil {
		b.WriteString("Storage info not available")
		return b.String()
	}
	b.WriteString("Total: " + GB(s.Storage.TotalBytes) + "GB\n")
	b.WriteString("Used: " + GB(s.Storage.UsedBytes) + "GB\n")
	b.WriteString("Free: " + GB(s.Storage.FreeBytes) + "GB")
	return b.String()
}

// GB renders a byte count in GiB rounded to two decimals, shortest form with
// at least one fractional digit: 10.0, 37.25, 12.5.
func GB(bytes uint64) string {
	v := math.Round(float64(bytes)/bytesPerGB*100) / 100
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
