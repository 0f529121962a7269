//go:build linux || darwin

package tui

import (
	"time"

	"github.com/pranshuparmar/memtop/pkg/model"
)

// tickMsg signals a pull-mode refresh tick
type tickMsg time.Time

// scanMsg carries a scan pushed by the scheduler
type scanMsg model.ScanResult

// signalResultMsg reports the outcome of terminating a process
type signalResultMsg struct {
	pid   int32
	name  string
	force bool
	err   error
}
