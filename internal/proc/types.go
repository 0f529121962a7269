package proc

import (
	"fmt"
	"strings"
)

// PID is an OS-assigned process id. Ids are unique at a single instant
// but are reused once a process exits.
type PID int32

// Scope selects which processes an enumeration returns.
type Scope uint32

// Scope values match the libproc PROC_*_ONLY selectors.
const (
	ScopeAll  Scope = 1
	ScopePGRP Scope = 2
	ScopeTTY  Scope = 3
	ScopeUID  Scope = 4
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopePGRP:
		return "pgrp"
	case ScopeTTY:
		return "tty"
	case ScopeUID:
		return "uid"
	default:
		return fmt.Sprintf("scope(%d)", uint32(s))
	}
}

// ParseScope converts a flag value into a Scope.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ScopeAll, nil
	case "pgrp", "group":
		return ScopePGRP, nil
	case "tty", "terminal":
		return ScopeTTY, nil
	case "uid", "user":
		return ScopeUID, nil
	}
	return 0, fmt.Errorf("unknown scope %q (want all, pgrp, tty or uid)", s)
}

// RusageInfo mirrors struct rusage_info_v4. Only PhysFootprint is used
// for ranking. CPU time fields are nanoseconds; the *Abstime fields are
// raw mach ticks.
type RusageInfo struct {
	UUID                      [16]byte
	UserTime                  uint64
	SystemTime                uint64
	PkgIdleWakeups            uint64
	InterruptWakeups          uint64
	Pageins                   uint64
	WiredSize                 uint64
	ResidentSize              uint64
	PhysFootprint             uint64
	ProcStartAbstime          uint64
	ProcExitAbstime           uint64
	ChildUserTime             uint64
	ChildSystemTime           uint64
	ChildPkgIdleWakeups       uint64
	ChildInterruptWakeups     uint64
	ChildPageins              uint64
	ChildElapsedAbstime       uint64
	DiskioBytesRead           uint64
	DiskioBytesWritten        uint64
	CPUTimeQOSDefault         uint64
	CPUTimeQOSMaintenance     uint64
	CPUTimeQOSBackground      uint64
	CPUTimeQOSUtility         uint64
	CPUTimeQOSLegacy          uint64
	CPUTimeQOSUserInitiated   uint64
	CPUTimeQOSUserInteractive uint64
	BilledSystemTime          uint64
	ServicedSystemTime        uint64
	LogicalWrites             uint64
	LifetimeMaxPhysFootprint  uint64
	Instructions              uint64
	Cycles                    uint64
	BilledEnergy              uint64
	ServicedEnergy            uint64
	IntervalMaxPhysFootprint  uint64
	RunnableTime              uint64
}
