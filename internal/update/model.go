package update

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/storage"
)

type View string

const (
	ViewToday   View = "Today"
	ViewHabits  View = "Habits"
	ViewHistory View = "History"
	ViewStats   View = "Stats"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today   string
	Habits  string
	History string
	Stats   string
	Help    string
	Quit    string
}

type TodayState struct {
	// FocusDate is the day being viewed and toggled; defaults to today and
	// never moves past it.
	FocusDate time.Time
	Cursor    int
	Capturing bool
}

type HabitsState struct {
	Cursor          int
	Capturing       bool
	ConfirmDeleteID string
}

type HistoryState struct {
	WindowDays int
}

type StatsState struct {
	WeeksBack  int
	MonthsBack int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView     View
	Doc             model.Document
	SelectedHabitID string
	Today           TodayState
	Habits          HabitsState
	History         HistoryState
	Stats           StatsState
	Palette         CommandPaletteState
	HelpVisible     bool
	Status          StatusBar
	Keys            GlobalKeyMap
	Quitting        bool
	LastError       error
	Rollover        *scheduler.Engine

	store storage.Store
	nowFn func() time.Time

	quickAddInput textinput.Model
	commandInput  textinput.Model
	todayProgress progress.Model
	weeklyTable   table.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DayRolloverMsg struct {
	Event scheduler.RolloverEvent
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewToday,
		Doc:         model.NewDocument(),
		History:     HistoryState{WindowDays: defaultHistoryDays},
		Stats:       StatsState{WeeksBack: defaultWeeksBack, MonthsBack: defaultMonthsBack},
		Keys: GlobalKeyMap{
			Today:   "1",
			Habits:  "2",
			History: "3",
			Stats:   "4",
			Help:    "?",
			Quit:    "q",
		},
		nowFn: time.Now,
	}
	m.Today.FocusDate = datekey.StartOfDay(m.nowFn())
	m.initBubbleComponents()
	return m
}

func NewModelWithStore(store storage.Store, cfg RuntimeConfig) (Model, error) {
	m := NewModel()
	m.store = store
	m.History.WindowDays = cfg.HistoryWindowDays
	m.Stats.WeeksBack = cfg.WeeksBack
	m.Stats.MonthsBack = cfg.MonthsBack

	doc, err := store.Load()
	if err != nil {
		return Model{}, err
	}
	if len(doc.Habits) == 0 && len(doc.Completions) == 0 {
		// Fresh document: seed the week start from config.
		doc.Settings = model.Settings{WeekStartsOn: cfg.WeekStartsOn}.Normalize()
	}
	m.Doc = doc
	m.syncSelectedToCursor()
	return m, nil
}

func NewModelWithRollover(store storage.Store, cfg RuntimeConfig, engine *scheduler.Engine) (Model, error) {
	m, err := NewModelWithStore(store, cfg)
	if err != nil {
		return Model{}, err
	}
	m.Rollover = engine
	return m, nil
}

func (m *Model) initBubbleComponents() {
	quickAdd := textinput.New()
	quickAdd.Placeholder = "habit name"
	quickAdd.CharLimit = 80
	m.quickAddInput = quickAdd

	command := textinput.New()
	command.Placeholder = "add | done | target | show"
	command.CharLimit = 120
	m.commandInput = command

	m.todayProgress = progress.New(progress.WithDefaultGradient())

	m.weeklyTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Week", Width: 16},
			{Title: "Done", Width: 9},
			{Title: "Rate", Width: 6},
		}),
		table.WithHeight(6),
	)

	m.helpModel = help.New()
}

// habitsSorted returns all habits ordered active first, then by name. This
// is the manage-view display order; the stored order is untouched.
func (m Model) habitsSorted() []model.Habit {
	out := make([]model.Habit, len(m.Doc.Habits))
	copy(out, m.Doc.Habits)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Active != out[j].Active {
			return out[i].Active
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (m Model) activeHabitsSorted() []model.Habit {
	out := make([]model.Habit, 0, len(m.Doc.Habits))
	for _, h := range m.habitsSorted() {
		if h.Active {
			out = append(out, h)
		}
	}
	return out
}

func (m *Model) syncSelectedToCursor() {
	switch m.CurrentView {
	case ViewHabits:
		habits := m.habitsSorted()
		if m.Habits.Cursor >= 0 && m.Habits.Cursor < len(habits) {
			m.SelectedHabitID = habits[m.Habits.Cursor].ID
		}
	default:
		habits := m.activeHabitsSorted()
		if m.Today.Cursor >= 0 && m.Today.Cursor < len(habits) {
			m.SelectedHabitID = habits[m.Today.Cursor].ID
		}
	}
}

// persist saves the document after a mutation. Failures surface on the
// status bar; the in-memory document stays authoritative either way.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.Doc); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
}

func (m Model) todayKey() string {
	return datekey.Format(m.nowFn())
}

func (m Model) focusKey() string {
	return datekey.Format(m.Today.FocusDate)
}
