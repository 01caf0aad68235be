package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewHabitDefaults(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	h := NewHabit("  Morning run ", 5, now)
	if h.ID == "" {
		t.Fatal("expected generated id")
	}
	if h.Name != "Morning run" {
		t.Fatalf("name = %q", h.Name)
	}
	if !h.Active {
		t.Fatal("new habit should be active")
	}
	if h.CreatedAt != "2026-08-31" {
		t.Fatalf("created_at = %q", h.CreatedAt)
	}
	if err := h.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestClampTarget(t *testing.T) {
	cases := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {4, 4}, {7, 7}, {8, 7}, {100, 7},
	}
	for _, tc := range cases {
		if got := ClampTarget(tc.in); got != tc.want {
			t.Fatalf("ClampTarget(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSetTargetPerWeekClamps(t *testing.T) {
	h := NewHabit("read", 3, time.Now())
	h.SetTargetPerWeek(12)
	if h.TargetPerWeek != 7 {
		t.Fatalf("target = %d, want 7", h.TargetPerWeek)
	}
	h.SetTargetPerWeek(0)
	if h.TargetPerWeek != 1 {
		t.Fatalf("target = %d, want 1", h.TargetPerWeek)
	}
}

func TestHabitValidate(t *testing.T) {
	valid := NewHabit("stretch", 2, time.Now())

	missingID := valid
	missingID.ID = " "
	if err := missingID.Validate(); err == nil {
		t.Fatal("expected error for missing id")
	}

	missingName := valid
	missingName.Name = ""
	if err := missingName.Validate(); err == nil {
		t.Fatal("expected error for missing name")
	}

	badTarget := valid
	badTarget.TargetPerWeek = 9
	if err := badTarget.Validate(); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	badCreated := valid
	badCreated.CreatedAt = "yesterday"
	if err := badCreated.Validate(); err == nil {
		t.Fatal("expected error for malformed created_at")
	}
}

func TestDocumentRemoveHabit(t *testing.T) {
	a := NewHabit("run", 5, time.Now())
	b := NewHabit("read", 3, time.Now())
	doc := NewDocument()
	doc.Habits = []Habit{a, b}
	doc.Completions = CompletionLog{
		"2026-08-29": {a.ID: true, b.ID: true},
		"2026-08-30": {b.ID: true},
	}

	next := doc.RemoveHabit(b.ID)
	if len(next.Habits) != 1 || next.Habits[0].ID != a.ID {
		t.Fatalf("unexpected habits after delete: %+v", next.Habits)
	}
	if _, ok := next.Completions["2026-08-30"]; ok {
		t.Fatal("day owned solely by deleted habit should be pruned")
	}
	if !IsCompleted(next.Completions, "2026-08-29", a.ID) {
		t.Fatal("surviving habit's completion was lost")
	}
	if IsCompleted(next.Completions, "2026-08-29", b.ID) {
		t.Fatal("deleted habit still present in log")
	}
}

func TestSettingsNormalize(t *testing.T) {
	if got := (Settings{WeekStartsOn: 4}).Normalize().WeekStartsOn; got != WeekStartsMonday {
		t.Fatalf("out-of-range week start = %d, want monday", got)
	}
	if got := (Settings{WeekStartsOn: WeekStartsSunday}).Normalize().WeekStartsOn; got != WeekStartsSunday {
		t.Fatalf("sunday week start changed to %d", got)
	}
}
