package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/rollup"
	"github.com/sandeepkv93/habitd/internal/views"
)

const statsRateWindowDays = 30

func (m Model) handleStatsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "+", "=":
		m.Stats.WeeksBack++
		m.Status = StatusBar{Text: fmt.Sprintf("showing %d weeks", m.Stats.WeeksBack), IsError: false}
	case "-":
		if m.Stats.WeeksBack > 1 {
			m.Stats.WeeksBack--
			m.Status = StatusBar{Text: fmt.Sprintf("showing %d weeks", m.Stats.WeeksBack), IsError: false}
		}
	case "m":
		m.Stats.MonthsBack++
		m.Status = StatusBar{Text: fmt.Sprintf("showing %d months", m.Stats.MonthsBack), IsError: false}
	case "M":
		if m.Stats.MonthsBack > 1 {
			m.Stats.MonthsBack--
			m.Status = StatusBar{Text: fmt.Sprintf("showing %d months", m.Stats.MonthsBack), IsError: false}
		}
	default:
		var cmd tea.Cmd
		m.weeklyTable, cmd = m.weeklyTable.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) renderStatsView() string {
	now := m.nowFn()

	weekly := rollup.Weekly(m.Doc.Habits, m.Doc.Completions, m.Stats.WeeksBack, m.Doc.Settings.WeekStartsOn, now)
	rows := make([]table.Row, 0, len(weekly))
	for _, w := range weekly {
		rows = append(rows, table.Row{
			w.Label,
			fmt.Sprintf("%d/%d", w.Completed, w.TotalPossible),
			fmt.Sprintf("%d%%", w.Rate),
		})
	}
	m.weeklyTable.SetRows(rows)

	monthly := rollup.Monthly(m.Doc.Habits, m.Doc.Completions, m.Stats.MonthsBack, now)
	monthlyRows := make([]views.MonthlyRowData, 0, len(monthly))
	for _, mo := range monthly {
		monthlyRows = append(monthlyRows, views.MonthlyRowData{
			Label:         mo.Label,
			Completed:     mo.Completed,
			TotalPossible: mo.TotalPossible,
			Rate:          mo.Rate,
			DaysInMonth:   mo.DaysInMonth,
		})
	}

	streaks := make([]views.StreakRowData, 0)
	for _, h := range m.activeHabitsSorted() {
		st := rollup.Stats(h.ID, m.Doc.Completions, statsRateWindowDays, now)
		streaks = append(streaks, views.StreakRowData{
			Name:          h.Name,
			CurrentStreak: st.CurrentStreak,
			BestStreak:    st.BestStreak,
			Rate:          st.Rate,
		})
	}

	spark, sparkLabel := m.dailySparkline(now)

	return views.RenderStatsPanel(views.StatsPanelData{
		WeeklyTableView: m.weeklyTable.View(),
		Monthly:         monthlyRows,
		Streaks:         streaks,
		RateWindowDays:  statsRateWindowDays,
		DailySpark:      spark,
		SparkLabel:      sparkLabel,
	})
}

// dailySparkline renders the last two weeks of daily completion rates.
func (m Model) dailySparkline(now time.Time) (spark, label string) {
	startKey, endKey := datekey.LastNDays(datekey.StartOfDay(now), 14)
	points, err := rollup.Daily(m.Doc.Habits, m.Doc.Completions, startKey, endKey)
	if err != nil {
		return "", ""
	}
	rates := make([]int, 0, len(points))
	for _, p := range points {
		rates = append(rates, p.Rate)
	}
	return views.Sparkline(rates), "(last 14 days)"
}
