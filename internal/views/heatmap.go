package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeatmapCell is one day in the consistency heatmap.
type HeatmapCell struct {
	Date string
	// Rate is the day's completion rate, 0-100. Blank marks padding cells
	// before the window starts.
	Rate  int
	Blank bool
}

var heatStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// RenderHeatmap lays cells out calendar-style, one row per week, seven
// columns wide. Cells is expected to start on a week boundary (pad with
// Blank cells to align).
func RenderHeatmap(cells []HeatmapCell, dayLabels []string) string {
	var b strings.Builder
	if len(dayLabels) == 7 {
		b.WriteString(dimStyle.Render(strings.Join(dayLabels, " ")) + "\n")
	}
	for i, cell := range cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		if cell.Blank {
			b.WriteString("   ")
			continue
		}
		b.WriteString(heatStyle(cell.Rate).Render("■") + "  ")
	}
	return strings.TrimRight(b.String(), " \n")
}

func HeatmapLegend() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("less "))
	for _, style := range heatStyles {
		b.WriteString(style.Render("■"))
	}
	b.WriteString(dimStyle.Render(" more"))
	return b.String()
}

func heatStyle(rate int) lipgloss.Style {
	switch {
	case rate <= 0:
		return heatStyles[0]
	case rate <= 25:
		return heatStyles[1]
	case rate <= 50:
		return heatStyles[2]
	case rate <= 75:
		return heatStyles[3]
	default:
		return heatStyles[4]
	}
}

const sparkChars = " .:-=+*#%@"

// Sparkline renders rates (0-100) as a single-line ASCII strip.
func Sparkline(rates []int) string {
	if len(rates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range rates {
		if r < 0 {
			r = 0
		}
		if r > 100 {
			r = 100
		}
		idx := r * (len(sparkChars) - 1) / 100
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
