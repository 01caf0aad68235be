// Package model holds the habit tracker's domain types: habits, settings,
// the completion log, and the persisted document that wraps them.
package model

const (
	CurrentVersion = 1

	WeekStartsSunday = 0
	WeekStartsMonday = 1
)

type Settings struct {
	WeekStartsOn int `json:"weekStartsOn"`
}

// Normalize coerces any out-of-range week start to the Monday default.
func (s Settings) Normalize() Settings {
	if s.WeekStartsOn != WeekStartsSunday && s.WeekStartsOn != WeekStartsMonday {
		s.WeekStartsOn = WeekStartsMonday
	}
	return s
}

// Document is the whole persisted state: the single source of truth held in
// memory and written back after every mutation. Rollups are never stored in
// it; they are recomputed from Completions on demand.
type Document struct {
	Version       int           `json:"version"`
	Settings      Settings      `json:"settings"`
	Habits        []Habit       `json:"habits"`
	Completions   CompletionLog `json:"completions"`
	ExportedAtISO string        `json:"exportedAtISO,omitempty"`
}

func NewDocument() Document {
	return Document{
		Version:     CurrentVersion,
		Settings:    Settings{WeekStartsOn: WeekStartsMonday},
		Habits:      []Habit{},
		Completions: CompletionLog{},
	}
}

// HabitByID returns the habit with the given id, if present.
func (d Document) HabitByID(id string) (Habit, bool) {
	for _, h := range d.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// RemoveHabit deletes the habit and cascades the removal of its completion
// records so no orphaned ids remain in the log.
func (d Document) RemoveHabit(id string) Document {
	kept := make([]Habit, 0, len(d.Habits))
	for _, h := range d.Habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	d.Habits = kept
	d.Completions = RemoveHabit(d.Completions, id)
	return d
}
