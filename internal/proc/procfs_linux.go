//go:build linux

package proc

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// userHZ is the clock tick rate /proc reports CPU times in.
const userHZ = 100

// procFS serves the accounting calls from a proc filesystem.
type procFS struct {
	fs    procfs.FS
	root  string
	probe error
}

func newNativeAccounting() Accounting {
	return newProcFS(procfs.DefaultMountPoint)
}

func newProcFS(mountPoint string) *procFS {
	fs, err := procfs.NewFS(mountPoint)
	return &procFS{fs: fs, root: mountPoint, probe: err}
}

func (p *procFS) ListPIDs(scope Scope, typeinfo uint32, buf []int32) (int, error) {
	if p.probe != nil {
		return 0, p.probe
	}
	switch scope {
	case ScopeAll, ScopePGRP, ScopeTTY, ScopeUID:
	default:
		return 0, unix.EINVAL
	}

	procs, err := p.fs.AllProcs()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, pr := range procs {
		if scope != ScopeAll && !p.inScope(pr, scope, typeinfo) {
			continue
		}
		if len(buf) > 0 {
			if n >= len(buf) {
				break
			}
			buf[n] = int32(pr.PID)
		}
		n++
	}
	return n * pidSize, nil
}

func (p *procFS) inScope(pr procfs.Proc, scope Scope, typeinfo uint32) bool {
	switch scope {
	case ScopeUID:
		info, err := os.Stat(filepath.Join(p.root, strconv.Itoa(pr.PID)))
		if err != nil {
			return false
		}
		stat, ok := info.Sys().(*syscall.Stat_t)
		return ok && stat.Uid == typeinfo
	case ScopePGRP, ScopeTTY:
		stat, err := pr.Stat()
		if err != nil {
			return false
		}
		if scope == ScopePGRP {
			return uint32(stat.PGRP) == typeinfo
		}
		return stat.TTY != 0 && uint32(stat.TTY) == typeinfo
	}
	return true
}

func (p *procFS) proc(pid PID) (procfs.Proc, error) {
	if p.probe != nil {
		return procfs.Proc{}, p.probe
	}
	if pid <= 0 {
		return procfs.Proc{}, unix.EINVAL
	}
	pr, err := p.fs.Proc(int(pid))
	if err != nil {
		return procfs.Proc{}, gone(err)
	}
	return pr, nil
}

func (p *procFS) PIDRusage(pid PID) (RusageInfo, error) {
	pr, err := p.proc(pid)
	if err != nil {
		return RusageInfo{}, err
	}

	stat, err := pr.Stat()
	if err != nil {
		return RusageInfo{}, gone(err)
	}
	status, err := pr.NewStatus()
	if err != nil {
		return RusageInfo{}, gone(err)
	}

	const tickNanos = uint64(1e9 / userHZ)
	info := RusageInfo{
		UserTime:                 uint64(stat.UTime) * tickNanos,
		SystemTime:               uint64(stat.STime) * tickNanos,
		ChildUserTime:            uint64(max(stat.CUTime, 0)) * tickNanos,
		ChildSystemTime:          uint64(max(stat.CSTime, 0)) * tickNanos,
		Pageins:                  uint64(stat.MajFlt),
		ChildPageins:             uint64(stat.CMajFlt),
		ProcStartAbstime:         stat.Starttime * tickNanos,
		InterruptWakeups:         status.NonVoluntaryCtxtSwitches,
		PkgIdleWakeups:           status.VoluntaryCtxtSwitches,
		WiredSize:                status.VmLck,
		ResidentSize:             status.VmRSS,
		PhysFootprint:            status.RssAnon + status.VmSwap,
		LifetimeMaxPhysFootprint: status.VmHWM,
	}

	// io is only readable by the owner; a denial leaves the disk counters
	// at zero instead of failing the whole record.
	if pio, err := pr.IO(); err == nil {
		info.DiskioBytesRead = pio.ReadBytes
		info.DiskioBytesWritten = pio.WriteBytes
		info.LogicalWrites = pio.WChar
	} else if isGone(err) {
		return RusageInfo{}, gone(err)
	}
	return info, nil
}

func (p *procFS) PIDName(pid PID, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, unix.EINVAL
	}
	pr, err := p.proc(pid)
	if err != nil {
		return 0, err
	}
	comm, err := pr.Comm()
	if err != nil {
		return 0, gone(err)
	}
	return copy(buf, comm), nil
}

func (p *procFS) Terminate(pid PID, sig unix.Signal) error {
	if pid <= 0 {
		return unix.EINVAL
	}
	return unix.Kill(int(pid), sig)
}

// gone maps a missing /proc entry onto ESRCH so it classifies like the
// libproc failure for an exited process.
func gone(err error) error {
	if isGone(err) {
		return unix.ESRCH
	}
	return err
}

func isGone(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, unix.ESRCH)
}
