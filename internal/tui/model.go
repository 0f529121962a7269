//go:build linux || darwin

package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranshuparmar/memtop/internal/poll"
	"github.com/pranshuparmar/memtop/pkg/model"
)

// Model is the watch-mode screen. It shows the newest scan and lets the user
// signal the process under the cursor.
type Model struct {
	keys     KeyMap
	holder   *poll.Holder // set in pull mode only
	interval time.Duration

	scan     model.ScanResult
	haveScan bool

	cursorIndex int
	paused      bool
	width       int
	height      int

	lastSignal *signalResultMsg
}

// New creates a model. A non-nil holder selects pull mode, where the model
// polls the holder every interval; otherwise scans arrive as messages.
func New(holder *poll.Holder, interval time.Duration) Model {
	if interval <= 0 {
		interval = poll.DefaultInterval
	}
	return Model{
		keys:     DefaultKeyMap(),
		holder:   holder,
		interval: interval,
	}
}

// Init starts the pull ticker when a holder is attached
func (m Model) Init() tea.Cmd {
	if m.holder == nil {
		return nil
	}
	return tea.Batch(m.pullCmd(), tickCmd(m.interval))
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pullCmd reads the latest published scan, if any.
func (m Model) pullCmd() tea.Cmd {
	holder := m.holder
	return func() tea.Msg {
		r, ok := holder.Latest()
		if !ok {
			return nil
		}
		return scanMsg(r)
	}
}

// currentRecord returns the record under the cursor
func (m Model) currentRecord() *model.ProcessRecord {
	if m.cursorIndex < 0 || m.cursorIndex >= len(m.scan.Records) {
		return nil
	}
	return &m.scan.Records[m.cursorIndex]
}

// Run drives the scheduler and the screen until the user quits or ctx ends.
// In push mode the scheduler sends scans straight into the program; in pull
// mode the model fetches them from the scheduler's holder.
func Run(ctx context.Context, cfg poll.Config) error {
	var p *tea.Program
	if cfg.Handoff == poll.HandoffPush {
		cfg.Sink = func(r model.ScanResult) {
			p.Send(scanMsg(r))
		}
	}

	sched, err := poll.New(cfg)
	if err != nil {
		return err
	}

	var holder *poll.Holder
	if cfg.Handoff == poll.HandoffPull {
		holder = sched.Holder()
	}
	p = tea.NewProgram(New(holder, sched.Interval()), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = sched.Run(ctx)
	}()
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err = p.Run()
	sched.Stop()
	cancel()
	wg.Wait()
	if err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}
