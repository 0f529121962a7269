//go:build linux || darwin

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/memtop/internal/output"
)

// renderDetailsPanel renders the right-side details panel
func (m Model) renderDetailsPanel(width int) string {
	availableHeight := max(m.height-6, 1)

	rec := m.currentRecord()
	if rec == nil {
		empty := lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(max(width-4, 0)).
			Height(availableHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Select a process")
		return panelStyle.Width(width).Height(availableHeight).Render(empty)
	}

	inner := max(width-4, 0)
	sections := []string{
		detailsTitleStyle.Render(fmt.Sprintf("PID %d", rec.PID)),
		renderDetailSection("NAME", rec.Name, inner),
		renderDetailSection("FOOTPRINT", formatFootprint(rec.Footprint), inner),
		renderDetailSection("RESIDENT", output.FormatBytes(rec.Resident), inner),
		renderDetailSection("CPU", fmt.Sprintf("user %s  sys %s",
			time.Duration(rec.UserTime).Round(time.Millisecond),
			time.Duration(rec.SystemTime).Round(time.Millisecond)), inner),
		renderDetailSection("PAGEINS", fmt.Sprintf("%d", rec.Pageins), inner),
		renderDetailSection("DISK", fmt.Sprintf("read %s  written %s",
			output.FormatBytes(rec.DiskRead), output.FormatBytes(rec.DiskWrite)), inner),
	}

	return panelStyle.
		Width(width).
		Height(availableHeight).
		Render(strings.Join(sections, "\n\n"))
}

// renderDetailSection renders a labeled section
func renderDetailSection(label, value string, width int) string {
	return detailsLabelStyle.Render(label) + "\n" + detailsValueStyle.Width(width).Render(value)
}
