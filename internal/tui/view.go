//go:build linux || darwin

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/memtop/internal/output"
)

const (
	warnFootprint = 512 * 1024 * 1024
	highFootprint = 1024 * 1024 * 1024
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// 65% table, rest details
	tableWidth := int(float64(m.width) * 0.65)
	detailsWidth := m.width - tableWidth - 4

	title := titleStyle.Render(fmt.Sprintf("memtop · top %d by memory footprint", len(m.scan.Records)))
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTablePanel(tableWidth),
		m.renderDetailsPanel(detailsWidth))

	return lipgloss.JoinVertical(lipgloss.Left, title, mainContent, m.renderHelpBar())
}

var columns = []struct {
	name  string
	width int
}{
	{"#", 3},
	{"PID", 7},
	{"NAME", 24},
	{"MEMORY", 10},
	{"RESIDENT", 10},
}

// renderTablePanel renders the ranked process table
func (m Model) renderTablePanel(width int) string {
	availableHeight := m.height - 6

	var sb strings.Builder

	var header []string
	for _, col := range columns {
		header = append(header, lipgloss.NewStyle().
			Width(col.width).
			Bold(true).
			Foreground(colorSecondary).
			Render(col.name))
	}
	sb.WriteString("  " + strings.Join(header, " "))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(colorBorder).Render(strings.Repeat("─", max(width-4, 0))))
	sb.WriteString("\n")

	if !m.haveScan {
		sb.WriteString(lipgloss.NewStyle().Foreground(colorMuted).Width(width - 4).Align(lipgloss.Center).Render("Waiting for first scan..."))
	} else if len(m.scan.Records) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(colorMuted).Width(width - 4).Align(lipgloss.Center).Render("No processes found"))
	} else {
		rowCount := min(len(m.scan.Records), max(availableHeight-2, 1))
		for i := 0; i < rowCount; i++ {
			sb.WriteString(m.renderTableRow(i))
			if i < rowCount-1 {
				sb.WriteString("\n")
			}
		}
	}

	return panelStyle.
		Width(width).
		Height(max(availableHeight, 1)).
		Render(sb.String())
}

// renderTableRow renders a single table row
func (m Model) renderTableRow(idx int) string {
	rec := m.scan.Records[idx]
	isCursor := idx == m.cursorIndex

	marker := "  "
	if isCursor {
		marker = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("> ")
	}

	values := []string{
		fmt.Sprintf("%d", idx+1),
		fmt.Sprintf("%d", rec.PID),
		output.Truncate(rec.Name, columns[2].width),
		formatFootprint(rec.Footprint),
		output.FormatBytes(rec.Resident),
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = lipgloss.NewStyle().Width(columns[i].width).Render(v)
	}
	row := marker + strings.Join(parts, " ")

	if isCursor {
		row = tableSelectedStyle.Render(row)
	}
	return row
}

// formatFootprint formats a footprint with color
func formatFootprint(b uint64) string {
	str := output.FormatBytes(b)
	if b > highFootprint {
		return memHighStyle.Render(str)
	}
	if b > warnFootprint {
		return memMedStyle.Render(str)
	}
	return str
}

// renderHelpBar renders the bottom help/status bar
func (m Model) renderHelpBar() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", statusKeyStyle.Render(h.Key), h.Desc))
	}

	var status string
	switch {
	case m.paused:
		status = pausedStyle.Render("⏸ PAUSED")
	case m.lastSignal != nil:
		status = formatSignalResult(*m.lastSignal)
	case m.haveScan:
		status = statusDescStyle.Render(fmt.Sprintf("cycle %d at %s", m.scan.Cycle, m.scan.At.Format(time.TimeOnly)))
	default:
		status = statusDescStyle.Render("scanning...")
	}

	leftSide := helpStyle.Render(strings.Join(parts, "  "))
	rightSide := helpStyle.Render(status)

	spacing := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 4
	if spacing < 0 {
		spacing = 0
	}

	return statusBarStyle.
		Width(m.width).
		Render(leftSide + strings.Repeat(" ", spacing) + rightSide)
}

func formatSignalResult(r signalResultMsg) string {
	sig := "SIGTERM"
	if r.force {
		sig = "SIGKILL"
	}
	if r.err != nil {
		return errorStyle.Render(fmt.Sprintf("%s %s (%d): %v", sig, r.name, r.pid, r.err))
	}
	return okStyle.Render(fmt.Sprintf("sent %s to %s (%d)", sig, r.name, r.pid))
}
