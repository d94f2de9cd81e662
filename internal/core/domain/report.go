package domain

import "time"

// CycleReport describes one completed monitor cycle.
type CycleReport struct {
	CycleID     string       `json:"cycle_id"`
	NodeID      string       `json:"node_id"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at"`
	NodeOK      bool         `json:"node_ok"`
	BlockNumber string       `json:"block_number"`
	PublicIP    PublicIP     `json:"public_ip"`
	Storage     *StorageInfo `json:"storage,omitempty"`
	Message     string       `json:"message"`
	Delivered   bool         `json:"delivered"`
}
