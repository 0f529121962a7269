//go:build linux || darwin

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/pranshuparmar/memtop/internal/output"
	"github.com/pranshuparmar/memtop/internal/poll"
	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/internal/rank"
	"github.com/pranshuparmar/memtop/internal/tui"
	"github.com/pranshuparmar/memtop/pkg/model"
)

var version = "dev"

// options holds the root command's flags
type options struct {
	interval    time.Duration
	limit       int
	scope       string
	scopeArg    int64
	concurrency int
	once        bool
	format      string
	wide        bool
	watch       bool
	handoff     string
	noColor     bool
	verbose     bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "memtop",
	Short: "Show the processes using the most memory",
	Long: `memtop lists the processes with the largest physical memory footprint,
refreshing once per interval.

By default a table is printed every cycle. Use --once for a single scan,
--format json or yaml for machine-readable output, and --watch for an
interactive view that can terminate the selected process.`,
	Example: `  memtop
  memtop --once --format json
  memtop --limit 20 --wide
  memtop --scope uid --scope-arg 501
  memtop --watch --handoff pull`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.DurationVar(&opts.interval, "interval", poll.DefaultInterval, "time between scans")
	f.IntVar(&opts.limit, "limit", rank.DefaultLimit, "number of processes to show")
	f.StringVar(&opts.scope, "scope", "all", "which processes to scan: all, pgrp, tty or uid")
	f.Int64Var(&opts.scopeArg, "scope-arg", -1, "process group, tty device or uid for --scope (defaults to the caller's own)")
	f.IntVar(&opts.concurrency, "concurrency", 1, "processes queried in parallel (1 queries them one at a time)")
	f.BoolVar(&opts.once, "once", false, "scan once and exit")
	f.StringVar(&opts.format, "format", "table", "output format: table, json or yaml")
	f.BoolVar(&opts.wide, "wide", false, "show resident size, CPU time, pageins and disk I/O")
	f.BoolVar(&opts.watch, "watch", false, "interactive view with live refresh")
	f.StringVar(&opts.handoff, "handoff", "push", "how scans reach the display: push or pull")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log scheduler activity")

	rootCmd.AddCommand(killCmd)
}

// Execute runs the root command, exiting non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case opts.watch:
		if opts.once || opts.format != "table" {
			return errors.New("--watch cannot be combined with --once or --format")
		}
		if !isTerminal(out) || !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("--watch needs an interactive terminal")
		}
		cfg.Logger = poll.Discard
		return tui.Run(ctx, cfg)

	case opts.once:
		cfg.Handoff = poll.HandoffPull
		sched, err := poll.New(cfg)
		if err != nil {
			return err
		}
		result, err := sched.ScanOnce(ctx)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		return render(out, result, false)

	default:
		return stream(ctx, out, cfg)
	}
}

// buildConfig validates the flags and turns them into a scheduler config.
func buildConfig(cmd *cobra.Command) (poll.Config, error) {
	if opts.interval <= 0 {
		return poll.Config{}, fmt.Errorf("--interval must be positive, got %s", opts.interval)
	}
	if opts.limit < 1 {
		return poll.Config{}, fmt.Errorf("--limit must be at least 1, got %d", opts.limit)
	}
	if opts.concurrency < 1 {
		return poll.Config{}, fmt.Errorf("--concurrency must be at least 1, got %d", opts.concurrency)
	}
	switch opts.format {
	case "table", "json", "yaml":
	default:
		return poll.Config{}, fmt.Errorf("unknown format %q (want table, json or yaml)", opts.format)
	}

	scope, err := proc.ParseScope(opts.scope)
	if err != nil {
		return poll.Config{}, err
	}
	typeinfo, err := scopeArg(cmd, scope)
	if err != nil {
		return poll.Config{}, err
	}
	handoff, err := poll.ParseHandoff(opts.handoff)
	if err != nil {
		return poll.Config{}, err
	}

	return poll.Config{
		Interval:    opts.interval,
		Limit:       opts.limit,
		Scope:       scope,
		Typeinfo:    typeinfo,
		Concurrency: opts.concurrency,
		Handoff:     handoff,
		Logger:      newLogger(opts.verbose),
	}, nil
}

// scopeArg returns --scope-arg, or the caller's own group, terminal or uid
// when it was not given.
func scopeArg(cmd *cobra.Command, scope proc.Scope) (uint32, error) {
	if cmd.Flags().Changed("scope-arg") {
		if opts.scopeArg < 0 || opts.scopeArg > int64(^uint32(0)) {
			return 0, fmt.Errorf("--scope-arg out of range: %d", opts.scopeArg)
		}
		return uint32(opts.scopeArg), nil
	}

	switch scope {
	case proc.ScopePGRP:
		return uint32(unix.Getpgrp()), nil
	case proc.ScopeUID:
		return uint32(os.Getuid()), nil
	case proc.ScopeTTY:
		return controllingTTY()
	}
	return 0, nil
}

// stream prints every scan until ctx is cancelled.
func stream(ctx context.Context, out io.Writer, cfg poll.Config) error {
	redraw := isTerminal(out)
	show := func(r model.ScanResult) {
		if err := render(out, r, redraw); err != nil {
			cfg.Logger.Warn("Render failed: ", err)
		}
	}

	if cfg.Handoff == poll.HandoffPush {
		cfg.Sink = show
		sched, err := poll.New(cfg)
		if err != nil {
			return err
		}
		return ignoreCancel(sched.Run(ctx))
	}

	sched, err := poll.New(cfg)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = sched.Run(ctx)
	}()
	defer wg.Wait()

	ticker := time.NewTicker(sched.Interval())
	defer ticker.Stop()

	var shown uint64
	for {
		if r, ok := sched.Holder().Latest(); ok && r.Cycle != shown {
			shown = r.Cycle
			show(r)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func render(out io.Writer, r model.ScanResult, redraw bool) error {
	switch opts.format {
	case "json":
		s, err := output.ToJSON(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case "yaml":
		s, err := output.ToYAML(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "---\n%s", s)
		return err
	}

	if redraw {
		fmt.Fprint(out, "\033[H\033[2J")
	}
	colorEnabled := !opts.noColor && isTerminal(out)
	output.NewTableRenderer(out, colorEnabled, opts.wide).Render(r)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// controllingTTY returns the device number of the terminal on stdin, in the
// encoding the process table reports it.
func controllingTTY() (uint32, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return 0, errors.New("--scope tty needs --scope-arg when stdin is not a terminal")
	}
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return 0, fmt.Errorf("stat stdin: %w", err)
	}
	return uint32(st.Rdev), nil
}
