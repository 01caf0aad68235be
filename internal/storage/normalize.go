package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
)

// ImportError reports an imported payload that cannot be coerced into a
// document at all. Field-level problems never raise it; they degrade to
// defaults instead.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("storage: invalid import: %s", e.Reason)
}

// rawDocument defers every field so each can be coerced independently.
type rawDocument struct {
	Version     json.RawMessage `json:"version"`
	Settings    json.RawMessage `json:"settings"`
	Habits      json.RawMessage `json:"habits"`
	Completions json.RawMessage `json:"completions"`
}

// Normalize coerces an imported JSON payload into a canonical document.
// The payload must be a JSON object; beyond that, each field degrades
// gracefully: missing settings default to a Monday week start, a non-array
// habits field becomes empty, a non-object completions field becomes empty.
// Habit targets are clamped, habits without ids are dropped, and empty
// completion days are pruned so the log invariant holds from the start.
func Normalize(raw []byte) (model.Document, error) {
	var outer rawDocument
	if err := json.Unmarshal(raw, &outer); err != nil {
		return model.Document{}, &ImportError{Reason: "payload is not a JSON object"}
	}

	doc := model.NewDocument()

	if len(outer.Settings) > 0 {
		var settings model.Settings
		if err := json.Unmarshal(outer.Settings, &settings); err == nil {
			doc.Settings = settings.Normalize()
		}
	}

	if len(outer.Habits) > 0 {
		var habits []model.Habit
		if err := json.Unmarshal(outer.Habits, &habits); err == nil {
			doc.Habits = sanitizeHabits(habits)
		}
	}

	if len(outer.Completions) > 0 {
		var log model.CompletionLog
		if err := json.Unmarshal(outer.Completions, &log); err == nil {
			doc.Completions = sanitizeLog(log)
		}
	}

	return doc, nil
}

func sanitizeHabits(habits []model.Habit) []model.Habit {
	out := make([]model.Habit, 0, len(habits))
	for _, h := range habits {
		if strings.TrimSpace(h.ID) == "" {
			continue
		}
		h.SetTargetPerWeek(h.TargetPerWeek)
		if h.CreatedAt != "" {
			if _, err := datekey.Parse(h.CreatedAt); err != nil {
				h.CreatedAt = ""
			}
		}
		out = append(out, h)
	}
	return out
}

func sanitizeLog(log model.CompletionLog) model.CompletionLog {
	out := make(model.CompletionLog, len(log))
	for key, set := range log {
		day := make(map[string]bool, len(set))
		for id, done := range set {
			if done && strings.TrimSpace(id) != "" {
				day[id] = true
			}
		}
		if len(day) > 0 {
			out[key] = day
		}
	}
	return out
}
