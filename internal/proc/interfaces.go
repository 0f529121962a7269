package proc

import "golang.org/x/sys/unix"

//go:generate mockgen -destination=mocks/mock_accounting.go -package=mocks github.com/pranshuparmar/memtop/internal/proc Accounting

// Accounting is the boundary to the OS process accounting services.
// Implementations own every raw buffer they touch: nothing is retained
// past the call and lengths are reported back in bytes so callers can
// reconcile them against what they handed in.
type Accounting interface {
	// ListPIDs lists live process ids for a scope. With an empty buf it
	// returns the number of bytes required; otherwise it fills buf and
	// returns the number of bytes written.
	ListPIDs(scope Scope, typeinfo uint32, buf []int32) (int, error)
	// PIDRusage returns the usage-info v4 record for pid.
	PIDRusage(pid PID) (RusageInfo, error)
	// PIDName copies the process name into buf and returns its length.
	PIDName(pid PID, buf []byte) (int, error)
	// Terminate delivers sig to pid.
	Terminate(pid PID, sig unix.Signal) error
}

var accounting Accounting = newNativeAccounting()

// SetAccounting replaces the accounting backend. Intended for tests.
func SetAccounting(a Accounting) {
	accounting = a
}

// ResetAccounting restores the native backend for the running platform.
func ResetAccounting() {
	accounting = newNativeAccounting()
}
