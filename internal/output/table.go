package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pranshuparmar/memtop/pkg/model"
)

var (
	tableColorReset  = "\033[0m"
	tableColorRed    = "\033[31m"
	tableColorGreen  = "\033[32m"
	tableColorBlue   = "\033[34m"
	tableColorYellow = "\033[33m"
)

const (
	warnFootprint = 512 * 1024 * 1024
	highFootprint = 1024 * 1024 * 1024
)

// TableRenderer prints ranked scans as aligned columns
type TableRenderer struct {
	out          io.Writer
	colorEnabled bool
	wide         bool
}

// NewTableRenderer creates a renderer writing to out. wide adds resident
// size, CPU time, pageins and disk I/O columns.
func NewTableRenderer(out io.Writer, colorEnabled, wide bool) *TableRenderer {
	return &TableRenderer{out: out, colorEnabled: colorEnabled, wide: wide}
}

// Render writes one scan: header, one row per record, and a summary line.
func (t *TableRenderer) Render(r model.ScanResult) {
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)

	header := " #\tPID\tNAME\tMEMORY"
	separator := " ─\t───\t────\t──────"
	if t.wide {
		header += "\tRESIDENT\tUSER\tSYSTEM\tPAGEINS\tREAD\tWRITTEN"
		separator += "\t────────\t────\t──────\t───────\t────\t───────"
	}
	if t.colorEnabled {
		fmt.Fprintf(w, "%s%s%s\n", tableColorBlue, header, tableColorReset)
	} else {
		fmt.Fprintln(w, header)
	}
	fmt.Fprintln(w, separator)

	for i, rec := range r.Records {
		t.printRow(w, i+1, rec)
	}
	w.Flush()

	t.printFooter(r)
}

func (t *TableRenderer) printRow(w io.Writer, rank int, rec model.ProcessRecord) {
	mem := FormatBytes(rec.Footprint)
	if t.colorEnabled {
		if rec.Footprint > highFootprint {
			mem = tableColorRed + mem + tableColorReset
		} else if rec.Footprint > warnFootprint {
			mem = tableColorYellow + mem + tableColorReset
		}
	}

	fmt.Fprintf(w, " %d\t%d\t%s\t%s", rank, rec.PID, Truncate(rec.Name, 32), mem)
	if t.wide {
		fmt.Fprintf(w, "\t%s\t%s\t%s\t%d\t%s\t%s",
			FormatBytes(rec.Resident),
			formatCPUTime(rec.UserTime),
			formatCPUTime(rec.SystemTime),
			rec.Pageins,
			FormatBytes(rec.DiskRead),
			FormatBytes(rec.DiskWrite))
	}
	fmt.Fprintln(w)
}

func (t *TableRenderer) printFooter(r model.ScanResult) {
	fmt.Fprintln(t.out)
	summary := fmt.Sprintf("Top %d of %d processes", len(r.Records), r.Stats.Collected)
	if t.colorEnabled {
		summary = tableColorGreen + summary + tableColorReset
	}
	fmt.Fprint(t.out, summary)

	failed := r.Stats.Enumerated - r.Stats.Collected
	if failed > 0 {
		if t.colorEnabled {
			fmt.Fprintf(t.out, " (%s%d unreadable%s)", tableColorYellow, failed, tableColorReset)
		} else {
			fmt.Fprintf(t.out, " (%d unreadable)", failed)
		}
	}
	if !r.At.IsZero() {
		fmt.Fprintf(t.out, " at %s", r.At.Format(time.TimeOnly))
	}
	fmt.Fprintln(t.out)
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func formatCPUTime(ns uint64) string {
	d := time.Duration(ns)
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
