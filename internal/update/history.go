package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/rollup"
	"github.com/sandeepkv93/habitd/internal/views"
)

var historyWindows = []int{35, 70, 140}

func (m Model) handleHistoryKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "w":
		m.History.WindowDays = nextHistoryWindow(m.History.WindowDays)
		m.Status = StatusBar{Text: fmt.Sprintf("history window: %d days", m.History.WindowDays), IsError: false}
	}
	return m
}

func nextHistoryWindow(current int) int {
	for i, w := range historyWindows {
		if w == current {
			return historyWindows[(i+1)%len(historyWindows)]
		}
	}
	return historyWindows[0]
}

func (m Model) renderHistoryView() string {
	now := datekey.StartOfDay(m.nowFn())
	startKey, endKey := datekey.LastNDays(now, m.History.WindowDays)

	points, err := rollup.Daily(m.Doc.Habits, m.Doc.Completions, startKey, endKey)
	if err != nil {
		return fmt.Sprintf("history unavailable: %v", err)
	}

	// Pad the front so the first cell sits on a week boundary and the
	// heatmap rows line up as calendar weeks.
	start, _ := datekey.Parse(startKey)
	weekStart := datekey.StartOfWeek(start, m.Doc.Settings.WeekStartsOn)
	pad := 0
	for d := weekStart; d.Before(start); d = datekey.AddDays(d, 1) {
		pad++
	}

	cells := make([]views.HeatmapCell, 0, pad+len(points))
	for i := 0; i < pad; i++ {
		cells = append(cells, views.HeatmapCell{Blank: true})
	}
	for _, p := range points {
		cells = append(cells, views.HeatmapCell{Date: p.Date, Rate: p.Rate})
	}

	return views.RenderHistoryPanel(views.HistoryPanelData{
		WindowLabel: fmt.Sprintf("last %d days (%s to %s)", m.History.WindowDays, startKey, endKey),
		HeatmapView: views.RenderHeatmap(cells, m.weekDayLabels()),
		Legend:      views.HeatmapLegend(),
	})
}

// weekDayLabels returns the seven two-letter column headers starting on
// the configured week boundary.
func (m Model) weekDayLabels() []string {
	anchor := datekey.StartOfWeek(datekey.StartOfDay(m.nowFn()), m.Doc.Settings.WeekStartsOn)
	labels := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := datekey.AddDays(anchor, i)
		labels = append(labels, day.Format("Mon")[:2])
	}
	return labels
}
