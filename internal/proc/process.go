package proc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// nameBufSize matches the capacity libproc expects for proc_name.
const nameBufSize = 1024

// Process is a handle to a process that was live when it was enumerated.
// It caches nothing: every accessor queries the OS again, so a handle
// goes stale as soon as the process exits.
type Process struct {
	pid PID
}

// NewProcess returns a handle for pid without checking that it exists.
func NewProcess(pid PID) Process {
	return Process{pid: pid}
}

func (p Process) PID() PID {
	return p.pid
}

// Name returns the process name. Names that are not valid UTF-8 are
// reported as a KindNameDecode failure rather than passed on.
func (p Process) Name() (string, error) {
	var buf [nameBufSize]byte
	n, err := accounting.PIDName(p.pid, buf[:])
	if err != nil {
		return "", classify(p.pid, "name", err)
	}
	if n < 0 || n > len(buf) {
		return "", &UsageError{PID: p.pid, Op: "name", Kind: KindBadAddress}
	}
	name := buf[:n]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if !utf8.Valid(name) {
		return "", &UsageError{PID: p.pid, Op: "name", Kind: KindNameDecode}
	}
	return string(name), nil
}

// Usage returns a fresh usage-info record for the process.
func (p Process) Usage() (RusageInfo, error) {
	info, err := accounting.PIDRusage(p.pid)
	if err != nil {
		return RusageInfo{}, classify(p.pid, "rusage", err)
	}
	return info, nil
}

// Terminate asks the process to exit with SIGTERM.
func (p Process) Terminate() error {
	return p.signal(unix.SIGTERM)
}

// Kill forces the process to exit with SIGKILL.
func (p Process) Kill() error {
	return p.signal(unix.SIGKILL)
}

// signal refuses pid 0 and negative ids, which kill(2) would treat as a
// process group.
func (p Process) signal(sig unix.Signal) error {
	if p.pid <= 0 {
		return classify(p.pid, "terminate", unix.EINVAL)
	}
	if err := accounting.Terminate(p.pid, sig); err != nil {
		return classify(p.pid, "terminate", err)
	}
	return nil
}

// Terminate signals pid, forcefully when force is set. It is independent
// of any scan and may fail on its own.
func Terminate(pid PID, force bool) error {
	p := NewProcess(pid)
	if force {
		return p.Kill()
	}
	return p.Terminate()
}
