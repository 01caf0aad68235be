package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/views"
)

const defaultTargetPerWeek = 3

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	habits := m.habitsSorted()
	switch msg.String() {
	case "up", "k":
		if m.Habits.Cursor > 0 {
			m.Habits.Cursor--
		}
		m.syncSelectedToCursor()
	case "down", "j":
		if m.Habits.Cursor < len(habits)-1 {
			m.Habits.Cursor++
		}
		m.syncSelectedToCursor()
	case "a":
		m.Habits.Capturing = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
	case "x":
		m.toggleActiveSelected()
	case "+", "=":
		m.adjustTargetSelected(1)
	case "-":
		m.adjustTargetSelected(-1)
	case "s":
		m.toggleWeekStart()
	case "D":
		if m.SelectedHabitID != "" {
			m.Habits.ConfirmDeleteID = m.SelectedHabitID
		}
	}
	return m
}

func (m Model) handleDeleteConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		id := m.Habits.ConfirmDeleteID
		m.Habits.ConfirmDeleteID = ""
		if habit, ok := m.Doc.HabitByID(id); ok {
			m.Doc = m.Doc.RemoveHabit(id)
			m.clampHabitsCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("deleted habit: %s", habit.Name), IsError: false}
			m.persist()
		}
	case "n", "N", "esc":
		m.Habits.ConfirmDeleteID = ""
		m.Status = StatusBar{Text: "delete cancelled", IsError: false}
	}
	return m
}

func (m *Model) toggleActiveSelected() {
	for i := range m.Doc.Habits {
		if m.Doc.Habits[i].ID == m.SelectedHabitID {
			m.Doc.Habits[i].Active = !m.Doc.Habits[i].Active
			state := "archived"
			if m.Doc.Habits[i].Active {
				state = "active"
			}
			m.Status = StatusBar{Text: fmt.Sprintf("%s is now %s", m.Doc.Habits[i].Name, state), IsError: false}
			m.persist()
			return
		}
	}
}

func (m *Model) adjustTargetSelected(delta int) {
	for i := range m.Doc.Habits {
		if m.Doc.Habits[i].ID == m.SelectedHabitID {
			m.Doc.Habits[i].SetTargetPerWeek(m.Doc.Habits[i].TargetPerWeek + delta)
			m.Status = StatusBar{
				Text:    fmt.Sprintf("%s target: %d/week", m.Doc.Habits[i].Name, m.Doc.Habits[i].TargetPerWeek),
				IsError: false,
			}
			m.persist()
			return
		}
	}
}

// toggleWeekStart flips the week boundary setting. Stored data is
// untouched; only week-aligned rollups change.
func (m *Model) toggleWeekStart() {
	if m.Doc.Settings.WeekStartsOn == model.WeekStartsMonday {
		m.Doc.Settings.WeekStartsOn = model.WeekStartsSunday
		m.Status = StatusBar{Text: "weeks now start on Sunday", IsError: false}
	} else {
		m.Doc.Settings.WeekStartsOn = model.WeekStartsMonday
		m.Status = StatusBar{Text: "weeks now start on Monday", IsError: false}
	}
	m.persist()
}

func (m *Model) clampHabitsCursor() {
	count := len(m.Doc.Habits)
	if m.Habits.Cursor >= count {
		m.Habits.Cursor = count - 1
	}
	if m.Habits.Cursor < 0 {
		m.Habits.Cursor = 0
	}
	m.syncSelectedToCursor()
}

func (m Model) renderHabitsView() string {
	habits := m.habitsSorted()
	items := make([]views.HabitItemData, 0, len(habits))
	confirmName := ""
	for i, h := range habits {
		if h.ID == m.Habits.ConfirmDeleteID {
			confirmName = h.Name
		}
		items = append(items, views.HabitItemData{
			ID:            h.ID,
			Name:          h.Name,
			TargetPerWeek: h.TargetPerWeek,
			Active:        h.Active,
			Notes:         h.Notes,
			Selected:      i == m.Habits.Cursor,
		})
	}
	return views.RenderHabitsPanel(views.HabitsPanelData{
		Items:         items,
		QuickAddView:  m.quickAddInput.View(),
		Capturing:     m.Habits.Capturing,
		ConfirmDelete: confirmName,
	})
}
