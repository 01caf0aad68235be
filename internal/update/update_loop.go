package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Rollover != nil {
		return waitForRolloverCmd(m.Rollover.C())
	}
	return nil
}

func waitForRolloverCmd(ch <-chan scheduler.RolloverEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DayRolloverMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Today.Capturing || m.Habits.Capturing {
			return m.handleCaptureKey(typed), nil
		}
		if m.Habits.ConfirmDeleteID != "" {
			return m.handleDeleteConfirmKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Today:
			m.CurrentView = ViewToday
			m.syncSelectedToCursor()
			return m, nil
		case m.Keys.Habits:
			m.CurrentView = ViewHabits
			m.syncSelectedToCursor()
			return m, nil
		case m.Keys.History:
			m.CurrentView = ViewHistory
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "E":
			m.exportDocument()
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewToday:
			return m.handleTodayKey(typed), nil
		case ViewHabits:
			return m.handleHabitsKey(typed), nil
		case ViewHistory:
			return m.handleHistoryKey(typed), nil
		case ViewStats:
			return m.handleStatsKey(typed), nil
		}

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.syncSelectedToCursor()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case DayRolloverMsg:
		m.Today.FocusDate = datekey.StartOfDay(typed.Event.At)
		m.Status = StatusBar{Text: fmt.Sprintf("new day: %s", typed.Event.DateKey), IsError: false}
		if m.Rollover != nil {
			return m, waitForRolloverCmd(m.Rollover.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayView()
	case ViewHabits:
		leftPane = m.renderHabitsView()
	case ViewHistory:
		leftPane = m.renderHistoryView()
	case ViewStats:
		leftPane = m.renderStatsView()
	}
	rightPane := m.renderCommandPalette() + m.renderHelpIfVisible()

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("habitd | view: %s | %s", m.CurrentView, m.focusKey()),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s today | %s habits | %s history | %s stats | / cmd | E export | %s help | %s quit",
			m.Keys.Today, m.Keys.Habits, m.Keys.History, m.Keys.Stats, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewHabits, ViewHistory, ViewStats:
		return true
	default:
		return false
	}
}
