//go:build linux || darwin

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/pkg/model"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.paused || m.holder == nil {
			return m, tickCmd(m.interval)
		}
		return m, tea.Batch(m.pullCmd(), tickCmd(m.interval))

	case scanMsg:
		if m.paused {
			return m, nil
		}
		// The holder repeats the last scan until a new one lands
		if m.haveScan && msg.Cycle == m.scan.Cycle {
			return m, nil
		}
		m.scan = model.ScanResult(msg)
		m.haveScan = true
		m.clampCursor()
		return m, nil

	case signalResultMsg:
		m.lastSignal = &msg
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursorIndex > 0 {
			m.cursorIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursorIndex < len(m.scan.Records)-1 {
			m.cursorIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Terminate):
		return m, m.signalCurrent(false)

	case key.Matches(msg, m.keys.Kill):
		return m, m.signalCurrent(true)

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	}

	return m, nil
}

// clampCursor keeps the cursor on the same rank after a refresh. Records are
// re-keyed every scan, so position is the only stable anchor.
func (m *Model) clampCursor() {
	if m.cursorIndex >= len(m.scan.Records) {
		m.cursorIndex = len(m.scan.Records) - 1
	}
	if m.cursorIndex < 0 {
		m.cursorIndex = 0
	}
}

func (m Model) signalCurrent(force bool) tea.Cmd {
	rec := m.currentRecord()
	if rec == nil {
		return nil
	}
	return signalCmd(rec.PID, rec.Name, force)
}

// signalCmd sends SIGTERM, or SIGKILL when force is set, to pid
func signalCmd(pid int32, name string, force bool) tea.Cmd {
	return func() tea.Msg {
		err := proc.Terminate(proc.PID(pid), force)
		return signalResultMsg{pid: pid, name: name, force: force, err: err}
	}
}
