//go:build darwin && cgo

package proc

/*
#include <errno.h>
#include <libproc.h>
#include <mach/mach_time.h>
#include <sys/resource.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// libproc is the native backend. Every call keeps its buffer for the
// duration of the call only.
type libproc struct{}

func newNativeAccounting() Accounting {
	return libproc{}
}

// machTimebase is read once; it is fixed for the life of the machine.
var machTimebase = sync.OnceValue(func() Timebase {
	var tb C.mach_timebase_info_data_t
	if C.mach_timebase_info(&tb) != 0 {
		return Timebase{Numer: 1, Denom: 1}
	}
	return Timebase{Numer: uint32(tb.numer), Denom: uint32(tb.denom)}
})

func (libproc) ListPIDs(scope Scope, typeinfo uint32, buf []int32) (int, error) {
	var kind C.uint32_t
	switch scope {
	case ScopeAll:
		kind = C.PROC_ALL_PIDS
	case ScopePGRP:
		kind = C.PROC_PGRP_ONLY
	case ScopeTTY:
		kind = C.PROC_TTY_ONLY
	case ScopeUID:
		kind = C.PROC_UID_ONLY
	default:
		return 0, fmt.Errorf("%w: scope %d", unix.EINVAL, uint32(scope))
	}

	var ptr unsafe.Pointer
	if len(buf) > 0 {
		ptr = unsafe.Pointer(&buf[0])
	}
	n, err := C.proc_listpids(kind, C.uint32_t(typeinfo), ptr, C.int(len(buf)*pidSize))
	if n < 0 {
		return 0, errnoOr(err)
	}
	return int(n), nil
}

func (libproc) PIDRusage(pid PID) (RusageInfo, error) {
	var ri C.struct_rusage_info_v4
	n, err := C.proc_pid_rusage(C.int(pid), C.RUSAGE_INFO_V4, (*C.rusage_info_t)(unsafe.Pointer(&ri)))
	if n != 0 {
		return RusageInfo{}, errnoOr(err)
	}

	info := RusageInfo{
		UserTime:                  uint64(ri.ri_user_time),
		SystemTime:                uint64(ri.ri_system_time),
		PkgIdleWakeups:            uint64(ri.ri_pkg_idle_wkups),
		InterruptWakeups:          uint64(ri.ri_interrupt_wkups),
		Pageins:                   uint64(ri.ri_pageins),
		WiredSize:                 uint64(ri.ri_wired_size),
		ResidentSize:              uint64(ri.ri_resident_size),
		PhysFootprint:             uint64(ri.ri_phys_footprint),
		ProcStartAbstime:          uint64(ri.ri_proc_start_abstime),
		ProcExitAbstime:           uint64(ri.ri_proc_exit_abstime),
		ChildUserTime:             uint64(ri.ri_child_user_time),
		ChildSystemTime:           uint64(ri.ri_child_system_time),
		ChildPkgIdleWakeups:       uint64(ri.ri_child_pkg_idle_wkups),
		ChildInterruptWakeups:     uint64(ri.ri_child_interrupt_wkups),
		ChildPageins:              uint64(ri.ri_child_pageins),
		ChildElapsedAbstime:       uint64(ri.ri_child_elapsed_abstime),
		DiskioBytesRead:           uint64(ri.ri_diskio_bytesread),
		DiskioBytesWritten:        uint64(ri.ri_diskio_byteswritten),
		CPUTimeQOSDefault:         uint64(ri.ri_cpu_time_qos_default),
		CPUTimeQOSMaintenance:     uint64(ri.ri_cpu_time_qos_maintenance),
		CPUTimeQOSBackground:      uint64(ri.ri_cpu_time_qos_background),
		CPUTimeQOSUtility:         uint64(ri.ri_cpu_time_qos_utility),
		CPUTimeQOSLegacy:          uint64(ri.ri_cpu_time_qos_legacy),
		CPUTimeQOSUserInitiated:   uint64(ri.ri_cpu_time_qos_user_initiated),
		CPUTimeQOSUserInteractive: uint64(ri.ri_cpu_time_qos_user_interactive),
		BilledSystemTime:          uint64(ri.ri_billed_system_time),
		ServicedSystemTime:        uint64(ri.ri_serviced_system_time),
		LogicalWrites:             uint64(ri.ri_logical_writes),
		LifetimeMaxPhysFootprint:  uint64(ri.ri_lifetime_max_phys_footprint),
		Instructions:              uint64(ri.ri_instructions),
		Cycles:                    uint64(ri.ri_cycles),
		BilledEnergy:              uint64(ri.ri_billed_energy),
		ServicedEnergy:            uint64(ri.ri_serviced_energy),
		IntervalMaxPhysFootprint:  uint64(ri.ri_interval_max_phys_footprint),
		RunnableTime:              uint64(ri.ri_runnable_time),
	}
	for i := range info.UUID {
		info.UUID[i] = byte(ri.ri_uuid[i])
	}
	machTimebase().scaleTimes(&info)
	return info, nil
}

func (libproc) PIDName(pid PID, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, unix.EINVAL
	}
	n, err := C.proc_name(C.int(pid), unsafe.Pointer(&buf[0]), C.uint32_t(len(buf)))
	if n <= 0 {
		if errno, ok := err.(unix.Errno); ok && errno != 0 {
			return 0, errno
		}
		if n < 0 {
			return 0, unix.EINVAL
		}
	}
	return int(n), nil
}

// Terminate sends SIGTERM through proc_terminate, which reports back the
// signal it chose. Other signals are delivered directly.
func (libproc) Terminate(pid PID, sig unix.Signal) error {
	if sig != unix.SIGTERM {
		return unix.Kill(int(pid), sig)
	}
	var s C.int
	n, err := C.proc_terminate(C.pid_t(pid), &s)
	if n != 0 {
		return errnoOr(err)
	}
	return nil
}

// errnoOr returns the errno cgo captured, or a generic failure when the
// call failed without setting one.
func errnoOr(err error) error {
	if errno, ok := err.(unix.Errno); ok && errno != 0 {
		return errno
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("libproc call failed without errno")
}
