//go:build !linux && !(darwin && cgo)

package proc

import "golang.org/x/sys/unix"

type unsupported struct{}

func newNativeAccounting() Accounting {
	return unsupported{}
}

func (unsupported) ListPIDs(Scope, uint32, []int32) (int, error) { return 0, ErrUnsupported }

func (unsupported) PIDRusage(PID) (RusageInfo, error) { return RusageInfo{}, ErrUnsupported }

func (unsupported) PIDName(PID, []byte) (int, error) { return 0, ErrUnsupported }

func (unsupported) Terminate(PID, unix.Signal) error { return ErrUnsupported }
