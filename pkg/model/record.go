package model

import "time"

// ProcessRecord is one ranked row handed to the presentation layer.
//
// Key identifies the row within a single scan only. PIDs are reused by the
// OS, so a UI that needs row identity across refreshes must use Key rather
// than PID, and must expect every key to change on the next scan.
type ProcessRecord struct {
	Key        string `json:"key" yaml:"key"`
	PID        int32  `json:"pid" yaml:"pid"`
	Name       string `json:"name" yaml:"name"`
	Footprint  uint64 `json:"mem_usage" yaml:"mem_usage"`
	Resident   uint64 `json:"resident" yaml:"resident"`
	UserTime   uint64 `json:"user_time_ns" yaml:"user_time_ns"`
	SystemTime uint64 `json:"system_time_ns" yaml:"system_time_ns"`
	Pageins    uint64 `json:"pageins" yaml:"pageins"`
	DiskRead   uint64 `json:"disk_read" yaml:"disk_read"`
	DiskWrite  uint64 `json:"disk_written" yaml:"disk_written"`
}

// ScanStats summarises how a scan went.
type ScanStats struct {
	Enumerated int            `json:"enumerated" yaml:"enumerated"`
	Collected  int            `json:"collected" yaml:"collected"`
	Failures   map[string]int `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// ScanResult is the ranked output of one scan cycle: at most N records,
// ordered by Footprint descending.
type ScanResult struct {
	Cycle   uint64          `json:"cycle" yaml:"cycle"`
	At      time.Time       `json:"at" yaml:"at"`
	Records []ProcessRecord `json:"processes" yaml:"processes"`
	Stats   ScanStats       `json:"stats" yaml:"stats"`
}
