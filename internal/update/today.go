package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/rollup"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	habits := m.activeHabitsSorted()
	switch msg.String() {
	case "up", "k":
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
		m.syncSelectedToCursor()
	case "down", "j":
		if m.Today.Cursor < len(habits)-1 {
			m.Today.Cursor++
		}
		m.syncSelectedToCursor()
	case " ", "enter":
		m.toggleSelected()
	case "h", "left":
		m.Today.FocusDate = datekey.AddDays(m.Today.FocusDate, -1)
		m.Status = StatusBar{Text: fmt.Sprintf("viewing %s", m.focusKey()), IsError: false}
	case "l", "right":
		today := datekey.StartOfDay(m.nowFn())
		if m.Today.FocusDate.Before(today) {
			m.Today.FocusDate = datekey.AddDays(m.Today.FocusDate, 1)
			m.Status = StatusBar{Text: fmt.Sprintf("viewing %s", m.focusKey()), IsError: false}
		}
	case "t":
		m.Today.FocusDate = datekey.StartOfDay(m.nowFn())
	case "a":
		m.Today.Capturing = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
	}
	return m
}

// toggleSelected flips the selected habit's completion on the focused day
// and persists on change, detected by log identity.
func (m *Model) toggleSelected() {
	if m.SelectedHabitID == "" {
		return
	}
	before := m.Doc.Completions
	m.Doc.Completions = model.Toggle(before, m.focusKey(), m.SelectedHabitID)
	if model.IsCompleted(m.Doc.Completions, m.focusKey(), m.SelectedHabitID) {
		m.Status = StatusBar{Text: "marked complete", IsError: false}
	} else {
		m.Status = StatusBar{Text: "marked incomplete", IsError: false}
	}
	m.persist()
}

func (m *Model) addHabit(name string) {
	habit := model.NewHabit(name, defaultTargetPerWeek, m.nowFn())
	if err := habit.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Doc.Habits = append(m.Doc.Habits, habit)
	m.Status = StatusBar{Text: fmt.Sprintf("added habit: %s", habit.Name), IsError: false}
	m.persist()
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Today.Capturing = false
		m.Habits.Capturing = false
		m.quickAddInput.Blur()
	case "enter":
		name := m.quickAddInput.Value()
		m.Today.Capturing = false
		m.Habits.Capturing = false
		m.quickAddInput.Blur()
		if name != "" {
			m.addHabit(name)
		}
	default:
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) renderTodayView() string {
	habits := m.activeHabitsSorted()
	key := m.focusKey()
	summary := rollup.Summarize(m.Doc.Habits, m.Doc.Completions, key)

	weekStart := datekey.StartOfWeek(m.Today.FocusDate, m.Doc.Settings.WeekStartsOn)
	weekStartKey := datekey.Format(weekStart)
	weekEndKey := datekey.Format(datekey.AddDays(weekStart, 6))

	items := make([]views.TodayItemData, 0, len(habits))
	for i, h := range habits {
		weekDone := 0
		if keys, err := datekey.RangeInclusive(weekStartKey, weekEndKey); err == nil {
			for _, dayKey := range keys {
				if model.IsCompleted(m.Doc.Completions, dayKey, h.ID) {
					weekDone++
				}
			}
		}
		items = append(items, views.TodayItemData{
			ID:            h.ID,
			Name:          h.Name,
			Completed:     model.IsCompleted(m.Doc.Completions, key, h.ID),
			CurrentStreak: rollup.CurrentStreak(h.ID, m.Doc.Completions, m.Today.FocusDate),
			WeekDone:      weekDone,
			TargetPerWeek: h.TargetPerWeek,
			Selected:      i == m.Today.Cursor,
		})
	}

	label := m.Today.FocusDate.Format("Mon Jan 2")
	if key == m.todayKey() {
		label += " (today)"
	}

	return views.RenderTodayPanel(views.TodayPanelData{
		DateLabel:    label,
		Items:        items,
		Completed:    summary.Completed,
		Total:        summary.Total,
		Remaining:    summary.Remaining,
		Rate:         summary.Rate,
		ProgressView: m.todayProgress.ViewAs(float64(summary.Rate) / 100),
		QuickAddView: m.quickAddInput.View(),
		Capturing:    m.Today.Capturing,
	})
}
