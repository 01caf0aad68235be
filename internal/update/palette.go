package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/commands"
	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.Blur()
		m.Status = StatusBar{}
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.Blur()
		m.runCommand(input)
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) runCommand(input string) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	result, err := commands.Execute(cmd, m.commandHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if result.Message != "" {
		m.Status = StatusBar{Text: result.Message, IsError: false}
	}
}

func (m *Model) commandHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			habit := model.NewHabit(args.Name, defaultTargetPerWeek, m.nowFn())
			if err := habit.Validate(); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Doc.Habits = append(m.Doc.Habits, habit)
			m.persist()
			return commands.Result{Message: fmt.Sprintf("added habit: %s", habit.Name)}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			habit, err := m.findHabitByName(args.Habit)
			if err != nil {
				return commands.Result{}, err
			}
			key := m.todayKey()
			if args.DateKey != "" {
				if _, err := datekey.Parse(args.DateKey); err != nil {
					return commands.Result{}, &commands.CommandError{
						Code:    commands.ErrCodeInvalidArgument,
						Message: fmt.Sprintf("bad date %q, want YYYY-MM-DD", args.DateKey),
					}
				}
				key = args.DateKey
			}
			m.Doc.Completions = model.Toggle(m.Doc.Completions, key, habit.ID)
			m.persist()
			state := "incomplete"
			if model.IsCompleted(m.Doc.Completions, key, habit.ID) {
				state = "complete"
			}
			return commands.Result{Message: fmt.Sprintf("%s marked %s on %s", habit.Name, state, key)}, nil
		},
		Target: func(args commands.TargetArgs) (commands.Result, error) {
			habit, err := m.findHabitByName(args.Habit)
			if err != nil {
				return commands.Result{}, err
			}
			for i := range m.Doc.Habits {
				if m.Doc.Habits[i].ID == habit.ID {
					m.Doc.Habits[i].SetTargetPerWeek(args.PerWeek)
					m.persist()
					return commands.Result{
						Message: fmt.Sprintf("%s target: %d/week", habit.Name, m.Doc.Habits[i].TargetPerWeek),
					}, nil
				}
			}
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "habit disappeared"}
		},
		Show: func(args commands.ShowArgs) (commands.Result, error) {
			switch args.Subject {
			case "today":
				m.CurrentView = ViewToday
			case "habits":
				m.CurrentView = ViewHabits
			case "history":
				m.CurrentView = ViewHistory
			case "stats":
				m.CurrentView = ViewStats
			}
			m.syncSelectedToCursor()
			return commands.Result{Message: fmt.Sprintf("showing %s", args.Subject)}, nil
		},
	}
}

// findHabitByName matches case-insensitively, exact name first and then
// unique prefix, so palette commands tolerate partial names.
func (m *Model) findHabitByName(name string) (model.Habit, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	var prefixMatches []model.Habit
	for _, h := range m.Doc.Habits {
		lower := strings.ToLower(h.Name)
		if lower == needle {
			return h, nil
		}
		if strings.HasPrefix(lower, needle) {
			prefixMatches = append(prefixMatches, h)
		}
	}
	switch len(prefixMatches) {
	case 1:
		return prefixMatches[0], nil
	case 0:
		return model.Habit{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("no habit named %q", name),
		}
	default:
		return model.Habit{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("%q matches %d habits, be more specific", name, len(prefixMatches)),
		}
	}
}

func (m Model) renderCommandPalette() string {
	if m.Palette.Active {
		return "command> " + m.commandInput.View()
	}
	return views.RenderCommandPalette(false, "")
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{
		"`1`-`4` switch views",
		"`j`/`k` move, `space` toggle completion",
		"`h`/`l` step the focused day (Today view)",
		"`a` add habit, `x` archive, `+`/`-` adjust target, `D` delete",
		"`w` cycle history window, `s` flip week start",
		"`/` command palette (add, done, target, show)",
		"`E` export a stamped snapshot",
		"`q` quit",
	}
	return "\n\n" + views.RenderHelp(string(m.CurrentView), bindings)
}
