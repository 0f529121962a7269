package proc_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"

	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/internal/proc/mocks"
)

func TestListProcesses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	gomock.InOrder(
		mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), nil).Return(3*4, nil),
		mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), gomock.Any()).
			DoAndReturn(func(_ proc.Scope, _ uint32, buf []int32) (int, error) {
				if len(buf) != 3 {
					t.Errorf("fill buffer len = %d, want 3", len(buf))
				}
				return copy(buf, []int32{1, 88, 412}) * 4, nil
			}),
	)

	procs, err := proc.ListProcesses(proc.ScopeAll, 0)
	if err != nil {
		t.Fatalf("ListProcesses failed: %v", err)
	}
	want := []proc.PID{1, 88, 412}
	if len(procs) != len(want) {
		t.Fatalf("Got %d processes, want %d", len(procs), len(want))
	}
	for i, p := range procs {
		if p.PID() != want[i] {
			t.Errorf("procs[%d].PID() = %d, want %d", i, p.PID(), want[i])
		}
	}
}

func TestListProcessesFillShorterThanProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	// Probe sizes for 50 ids; three processes exit before the fill.
	mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), nil).Return(50*4, nil)
	mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), gomock.Any()).
		DoAndReturn(func(_ proc.Scope, _ uint32, buf []int32) (int, error) {
			for i := 0; i < 47; i++ {
				buf[i] = int32(100 + i)
			}
			return 47 * 4, nil
		})

	procs, err := proc.ListProcesses(proc.ScopeAll, 0)
	if err != nil {
		t.Fatalf("ListProcesses failed: %v", err)
	}
	if len(procs) != 47 {
		t.Fatalf("Got %d processes, want 47", len(procs))
	}
	for i, p := range procs {
		if p.PID() != proc.PID(100+i) {
			t.Errorf("procs[%d].PID() = %d, want %d", i, p.PID(), 100+i)
		}
	}
}

func TestListProcessesScopeArgument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	mockAcct.EXPECT().ListPIDs(proc.ScopeUID, uint32(501), nil).Return(4, nil)
	mockAcct.EXPECT().ListPIDs(proc.ScopeUID, uint32(501), gomock.Any()).
		DoAndReturn(func(_ proc.Scope, _ uint32, buf []int32) (int, error) {
			buf[0] = 777
			return 4, nil
		})

	procs, err := proc.ListProcesses(proc.ScopeUID, 501)
	if err != nil {
		t.Fatalf("ListProcesses failed: %v", err)
	}
	if len(procs) != 1 || procs[0].PID() != 777 {
		t.Errorf("ListProcesses = %+v, want [777]", procs)
	}
}

func TestListProcessesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	mockAcct.EXPECT().ListPIDs(proc.ScopeTTY, uint32(3), nil).Return(0, nil)

	procs, err := proc.ListProcesses(proc.ScopeTTY, 3)
	if err != nil {
		t.Fatalf("ListProcesses failed: %v", err)
	}
	if len(procs) != 0 {
		t.Errorf("Got %d processes, want 0", len(procs))
	}
}

func TestListProcessesErrors(t *testing.T) {
	tests := []struct {
		name      string
		probe     int
		probeErr  error
		filled    int
		fillErr   error
		wantErrno unix.Errno
		contract  bool
	}{
		{name: "probe permission", probeErr: unix.EPERM, wantErrno: unix.EPERM},
		{name: "probe bad scope", probeErr: unix.EINVAL, wantErrno: unix.EINVAL},
		{name: "fill fails", probe: 8, fillErr: unix.ENOMEM, wantErrno: unix.ENOMEM},
		{name: "probe not id aligned", probe: 7, contract: true},
		{name: "probe negative", probe: -4, contract: true},
		{name: "fill overflows buffer", probe: 8, filled: 12, contract: true},
		{name: "fill not id aligned", probe: 8, filled: 6, contract: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAcct := mocks.NewMockAccounting(ctrl)
			proc.SetAccounting(mockAcct)
			defer proc.ResetAccounting()

			mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), nil).Return(tt.probe, tt.probeErr)
			if tt.probeErr == nil && tt.probe > 0 && tt.probe%4 == 0 {
				mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), gomock.Any()).Return(tt.filled, tt.fillErr)
			}

			_, err := proc.ListProcesses(proc.ScopeAll, 0)
			if err == nil {
				t.Fatal("ListProcesses should have failed")
			}
			var enumErr *proc.EnumerationError
			if !errors.As(err, &enumErr) {
				t.Fatalf("error %v is not an *EnumerationError", err)
			}
			if tt.contract && !errors.Is(err, proc.ErrBufferContract) {
				t.Errorf("error %v does not wrap ErrBufferContract", err)
			}
			if tt.wantErrno != 0 && !errors.Is(err, tt.wantErrno) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErrno)
			}
		})
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    proc.Scope
		wantErr bool
	}{
		{"", proc.ScopeAll, false},
		{"all", proc.ScopeAll, false},
		{"PGRP", proc.ScopePGRP, false},
		{"tty", proc.ScopeTTY, false},
		{"user", proc.ScopeUID, false},
		{"session", 0, true},
	}
	for _, tt := range tests {
		got, err := proc.ParseScope(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScope(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScope(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
