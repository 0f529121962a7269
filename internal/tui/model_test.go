//go:build linux || darwin

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"

	"github.com/pranshuparmar/memtop/internal/poll"
	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/internal/proc/mocks"
	"github.com/pranshuparmar/memtop/pkg/model"
)

func testScan(cycle uint64, names ...string) scanMsg {
	r := model.ScanResult{Cycle: cycle, At: time.Now()}
	for i, name := range names {
		r.Records = append(r.Records, model.ProcessRecord{
			Key:       name,
			PID:       int32(100 + i),
			Name:      name,
			Footprint: uint64(len(names)-i) * 1024 * 1024,
		})
	}
	return scanMsg(r)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitOnlyTicksInPullMode(t *testing.T) {
	if cmd := New(nil, time.Second).Init(); cmd != nil {
		t.Error("push-mode model should not start a ticker")
	}
	if cmd := New(&poll.Holder{}, time.Second).Init(); cmd == nil {
		t.Error("pull-mode model should start a ticker")
	}
}

func TestScanMessageReplacesRows(t *testing.T) {
	m := New(nil, time.Second)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})

	if got := m.View(); !strings.Contains(got, "Waiting for first scan") {
		t.Errorf("View before first scan:\n%s", got)
	}

	m, _ = update(t, m, testScan(1, "Safari", "Xcode"))
	if !m.haveScan || len(m.scan.Records) != 2 {
		t.Fatalf("scan not applied: %+v", m.scan)
	}
	view := m.View()
	for _, want := range []string{"Safari", "Xcode", "2.00 MB", "PID 100"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}

	m, _ = update(t, m, testScan(2, "mds"))
	if len(m.scan.Records) != 1 || m.scan.Records[0].Name != "mds" {
		t.Errorf("second scan not applied: %+v", m.scan.Records)
	}
}

func TestSameCycleIsIgnored(t *testing.T) {
	m := New(nil, time.Second)
	m, _ = update(t, m, testScan(4, "a", "b"))
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, testScan(4, "a", "b"))
	if m.cursorIndex != 1 {
		t.Errorf("cursorIndex = %d, want 1", m.cursorIndex)
	}
}

func TestPauseFreezesRows(t *testing.T) {
	m := New(nil, time.Second)
	m, _ = update(t, m, testScan(1, "first"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.paused {
		t.Fatal("space should pause")
	}

	m, _ = update(t, m, testScan(2, "second"))
	if m.scan.Records[0].Name != "first" {
		t.Errorf("paused model applied a new scan: %+v", m.scan.Records)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, testScan(3, "third"))
	if m.scan.Records[0].Name != "third" {
		t.Errorf("resumed model ignored a scan: %+v", m.scan.Records)
	}
}

func TestCursorMovement(t *testing.T) {
	m := New(nil, time.Second)
	m, _ = update(t, m, testScan(1, "a", "b", "c"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursorIndex != 0 {
		t.Errorf("up at top moved cursor to %d", m.cursorIndex)
	}
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursorIndex != 2 {
		t.Errorf("cursorIndex = %d, want 2", m.cursorIndex)
	}

	m, _ = update(t, m, testScan(2, "only"))
	if m.cursorIndex != 0 {
		t.Errorf("cursor not clamped after shrink: %d", m.cursorIndex)
	}

	m, _ = update(t, m, testScan(3))
	if m.currentRecord() != nil {
		t.Error("empty scan should leave no current record")
	}
}

func TestSignalKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	mockAcct.EXPECT().Terminate(proc.PID(101), unix.SIGTERM).Return(nil)
	mockAcct.EXPECT().Terminate(proc.PID(101), unix.SIGKILL).Return(unix.EPERM)

	m := New(nil, time.Second)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})
	m, _ = update(t, m, testScan(1, "a", "b"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a terminate command")
	}
	m, _ = update(t, m, cmd())
	if m.lastSignal == nil || m.lastSignal.err != nil || m.lastSignal.force {
		t.Errorf("lastSignal = %+v, want successful SIGTERM", m.lastSignal)
	}
	if !strings.Contains(m.View(), "sent SIGTERM to b (101)") {
		t.Errorf("View missing terminate status:\n%s", m.View())
	}

	m, cmd = update(t, m, runes("K"))
	if cmd == nil {
		t.Fatal("K should produce a kill command")
	}
	m, _ = update(t, m, cmd())
	if m.lastSignal == nil || !m.lastSignal.force || !proc.IsKind(m.lastSignal.err, proc.KindPermissionDenied) {
		t.Errorf("lastSignal = %+v, want denied SIGKILL", m.lastSignal)
	}
}

func TestKillKernelTaskRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	scan := testScan(1, "kernel_task")
	scan.Records[0].PID = 0

	m := New(nil, time.Second)
	m, _ = update(t, m, scan)
	m, cmd := update(t, m, runes("K"))
	if cmd == nil {
		t.Fatal("K should produce a kill command")
	}
	m, _ = update(t, m, cmd())
	if m.lastSignal == nil || !proc.IsKind(m.lastSignal.err, proc.KindInvalidArgument) {
		t.Errorf("lastSignal = %+v, want invalid argument for pid 0", m.lastSignal)
	}
}

func TestSignalWithoutRows(t *testing.T) {
	m := New(nil, time.Second)
	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter with no rows should do nothing")
	}
}

func TestQuit(t *testing.T) {
	m := New(nil, time.Second)
	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce a QuitMsg")
	}
}

func TestPullReadsHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcct := mocks.NewMockAccounting(ctrl)
	proc.SetAccounting(mockAcct)
	defer proc.ResetAccounting()

	mockAcct.EXPECT().ListPIDs(proc.ScopeAll, uint32(0), gomock.Any()).DoAndReturn(
		func(_ proc.Scope, _ uint32, buf []int32) (int, error) {
			if buf == nil {
				return 4, nil
			}
			buf[0] = 55
			return 4, nil
		}).Times(2)
	mockAcct.EXPECT().PIDRusage(proc.PID(55)).Return(proc.RusageInfo{PhysFootprint: 2048}, nil)
	mockAcct.EXPECT().PIDName(proc.PID(55), gomock.Any()).DoAndReturn(
		func(_ proc.PID, buf []byte) (int, error) {
			return copy(buf, "launchd"), nil
		})

	sched, err := poll.New(poll.Config{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	m := New(sched.Holder(), time.Second)

	if msg := m.pullCmd()(); msg != nil {
		t.Errorf("pull before first publish = %v, want nil", msg)
	}

	if _, err := sched.ScanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, m.pullCmd()())
	if len(m.scan.Records) != 1 || m.scan.Records[0].Name != "launchd" {
		t.Errorf("pulled scan = %+v", m.scan.Records)
	}

	m, cmd := update(t, m, tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next pull")
	}
}

func TestFormatSignalResult(t *testing.T) {
	got := formatSignalResult(signalResultMsg{pid: 9, name: "x", force: true, err: errors.New("boom")})
	if !strings.Contains(got, "SIGKILL x (9): boom") {
		t.Errorf("formatSignalResult = %q", got)
	}
}
