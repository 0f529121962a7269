package proc

import (
	"fmt"
	"unsafe"
)

const pidSize = int(unsafe.Sizeof(int32(0)))

// ListProcesses returns a handle for every process in scope.
//
// The listing is a two-step query: a probe with no buffer reports how many
// bytes the id list needs, then a second call fills a buffer of that size.
// Processes may exit between the two calls, so the handle count always
// comes from what the fill call actually wrote.
func ListProcesses(scope Scope, typeinfo uint32) ([]Process, error) {
	need, err := accounting.ListPIDs(scope, typeinfo, nil)
	if err != nil {
		return nil, &EnumerationError{Scope: scope, Typeinfo: typeinfo, Err: err}
	}
	if need < 0 || need%pidSize != 0 {
		return nil, &EnumerationError{Scope: scope, Typeinfo: typeinfo,
			Err: fmt.Errorf("%w: probe reported %d bytes", ErrBufferContract, need)}
	}
	if need == 0 {
		return []Process{}, nil
	}

	buf := make([]int32, need/pidSize)
	filled, err := accounting.ListPIDs(scope, typeinfo, buf)
	if err != nil {
		return nil, &EnumerationError{Scope: scope, Typeinfo: typeinfo, Err: err}
	}
	if filled < 0 || filled > len(buf)*pidSize || filled%pidSize != 0 {
		return nil, &EnumerationError{Scope: scope, Typeinfo: typeinfo,
			Err: fmt.Errorf("%w: filled %d bytes into a %d byte buffer", ErrBufferContract, filled, len(buf)*pidSize)}
	}

	ids := buf[:filled/pidSize]
	processes := make([]Process, 0, len(ids))
	for _, id := range ids {
		processes = append(processes, NewProcess(PID(id)))
	}
	return processes, nil
}
