package poll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/internal/rank"
	"github.com/pranshuparmar/memtop/pkg/model"
)

// DefaultInterval is the time between scan cycles.
const DefaultInterval = time.Second

// Logger is the subset of the gologger API the scheduler writes to.
type Logger interface {
	Infoln(args ...any)
	Debugln(args ...any)
	Warn(args ...any)
}

type discard struct{}

func (discard) Infoln(...any)  {}
func (discard) Debugln(...any) {}
func (discard) Warn(...any)    {}

// Discard drops everything written to it.
var Discard Logger = discard{}

// Handoff selects how a finished scan reaches the presentation layer.
type Handoff int

const (
	// HandoffPull stores each scan in the Holder for the reader to fetch.
	HandoffPull Handoff = iota
	// HandoffPush hands each scan to Config.Sink.
	HandoffPush
)

func (h Handoff) String() string {
	if h == HandoffPush {
		return "push"
	}
	return "pull"
}

// ParseHandoff accepts "push" or "pull".
func ParseHandoff(s string) (Handoff, error) {
	switch strings.ToLower(s) {
	case "", "pull":
		return HandoffPull, nil
	case "push":
		return HandoffPush, nil
	}
	return HandoffPull, fmt.Errorf("unknown handoff %q (want push or pull)", s)
}

// State is where the scheduler is within a cycle.
type State int32

const (
	StateIdle State = iota
	StateScanning
	StatePublishing
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StatePublishing:
		return "publishing"
	default:
		return "idle"
	}
}

// Config controls a Scheduler. Zero Interval, Limit and Scope fall back to
// DefaultInterval, rank.DefaultLimit and proc.ScopeAll.
type Config struct {
	Interval    time.Duration
	Limit       int
	Scope       proc.Scope
	Typeinfo    uint32
	Concurrency int
	Handoff     Handoff
	// Sink receives every scan in push mode. It runs on the scheduler
	// goroutine and must not block for long.
	Sink   func(model.ScanResult)
	Logger Logger
}

// Scheduler runs enumerate, collect, reduce and publish on a fixed period.
type Scheduler struct {
	cfg    Config
	holder Holder
	state  atomic.Int32
	cycle  atomic.Uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// New validates cfg and returns an idle scheduler.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Limit == 0 {
		cfg.Limit = rank.DefaultLimit
	}
	if cfg.Scope == 0 {
		cfg.Scope = proc.ScopeAll
	}
	if cfg.Logger == nil {
		cfg.Logger = Discard
	}
	switch cfg.Handoff {
	case HandoffPush:
		if cfg.Sink == nil {
			return nil, errors.New("push handoff requires a sink")
		}
	case HandoffPull:
		if cfg.Sink != nil {
			return nil, errors.New("pull handoff does not take a sink")
		}
	default:
		return nil, fmt.Errorf("unknown handoff %d", cfg.Handoff)
	}
	return &Scheduler{cfg: cfg, stop: make(chan struct{})}, nil
}

// Holder returns the cell pull-mode readers fetch scans from.
func (s *Scheduler) Holder() *Holder {
	return &s.holder
}

// State reports the current phase.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Interval returns the configured period.
func (s *Scheduler) Interval() time.Duration {
	return s.cfg.Interval
}

// Stop ends Run after the cycle in progress. It may be called any number of
// times, before or after Run.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Run scans immediately and then once per interval until ctx is cancelled
// or Stop is called. A cycle that has started always finishes; cancellation
// is only observed between cycles. Enumeration failures are logged and the
// cycle is skipped.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.cfg.Logger.Infoln("Polling every", s.cfg.Interval, "scope", s.cfg.Scope, "handoff", s.cfg.Handoff)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		default:
		}

		if _, err := s.ScanOnce(context.WithoutCancel(ctx)); err != nil {
			s.logCycleError(err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case <-ticker.C:
		}
	}
}

// ScanOnce runs a single cycle and publishes its result. If enumeration
// fails nothing is published and the error is returned.
func (s *Scheduler) ScanOnce(ctx context.Context) (model.ScanResult, error) {
	s.state.Store(int32(StateScanning))
	defer s.state.Store(int32(StateIdle))

	processes, err := proc.ListProcesses(s.cfg.Scope, s.cfg.Typeinfo)
	if err != nil {
		return model.ScanResult{}, err
	}

	results := proc.CollectAll(ctx, processes, s.cfg.Concurrency)

	cycle := s.cycle.Add(1)
	result := rank.Reduce(cycle, results, s.cfg.Limit)
	result.At = time.Now()

	s.cfg.Logger.Debugln("Cycle", cycle, "enumerated", result.Stats.Enumerated,
		"collected", result.Stats.Collected, "kept", len(result.Records))

	s.state.Store(int32(StatePublishing))
	if s.cfg.Handoff == HandoffPush {
		s.cfg.Sink(result)
	} else {
		s.holder.publish(result)
	}
	return result, nil
}

func (s *Scheduler) logCycleError(err error) {
	if errors.Is(err, proc.ErrBufferContract) {
		s.cfg.Logger.Warn("Process listing broke the size contract, skipping cycle: ", err)
		return
	}
	s.cfg.Logger.Warn("Process enumeration failed, skipping cycle: ", err)
}
