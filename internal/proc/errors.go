package proc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrUnsupported is returned by every accounting call on platforms
	// without a native backend.
	ErrUnsupported = errors.New("process accounting is not supported on this platform")

	// ErrBufferContract means the OS reported a length that cannot be
	// reconciled with the buffer it was given. It points at a broken
	// calling convention rather than a transient condition.
	ErrBufferContract = errors.New("process list buffer contract violated")
)

// ErrorKind classifies a per-process collection failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidArgument
	KindNoSuchProcess
	KindPermissionDenied
	KindOutOfMemory
	KindBadAddress
	KindNameDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNoSuchProcess:
		return "no such process"
	case KindPermissionDenied:
		return "permission denied"
	case KindOutOfMemory:
		return "out of memory"
	case KindBadAddress:
		return "bad address"
	case KindNameDecode:
		return "name is not valid UTF-8"
	default:
		return "unknown"
	}
}

// KindFromErrno maps an accounting errno onto an ErrorKind.
func KindFromErrno(errno unix.Errno) ErrorKind {
	switch errno {
	case unix.EINVAL:
		return KindInvalidArgument
	case unix.ESRCH, unix.ENOENT:
		return KindNoSuchProcess
	case unix.EACCES, unix.EPERM:
		return KindPermissionDenied
	case unix.ENOMEM:
		return KindOutOfMemory
	case unix.EFAULT:
		return KindBadAddress
	default:
		return KindUnknown
	}
}

// UsageError is a failure to inspect one process. It never aborts the
// rest of a scan.
type UsageError struct {
	PID  PID
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s pid %d: %s: %v", e.Op, e.PID, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s pid %d: %s", e.Op, e.PID, e.Kind)
}

func (e *UsageError) Unwrap() error { return e.Err }

// classify wraps an accounting error into a *UsageError.
func classify(pid PID, op string, err error) *UsageError {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue
	}
	kind := KindUnknown
	var errno unix.Errno
	if errors.As(err, &errno) {
		kind = KindFromErrno(errno)
	}
	return &UsageError{PID: pid, Op: op, Kind: kind, Err: err}
}

// IsKind reports whether err is a *UsageError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ue *UsageError
	return errors.As(err, &ue) && ue.Kind == kind
}

// EnumerationError is a failure of the listing call itself. It is fatal
// to the current scan cycle only.
type EnumerationError struct {
	Scope    Scope
	Typeinfo uint32
	Err      error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("list %s processes (arg %d): %v", e.Scope, e.Typeinfo, e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }
