package rollup

import (
	"testing"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
)

func TestCurrentStreakWalksBackward(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	log := model.CompletionLog{
		"2026-08-29": {"a": true},
		"2026-08-30": {"a": true},
		"2026-08-31": {"a": true},
		"2026-08-27": {"a": true}, // gap on the 28th
	}
	if got := CurrentStreak("a", log, now); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestCurrentStreakZeroWhenTodayMissed(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	log := model.CompletionLog{
		"2026-08-29": {"a": true},
		"2026-08-30": {"a": true},
	}
	if got := CurrentStreak("a", log, now); got != 0 {
		t.Fatalf("streak = %d, want 0 when today is not completed", got)
	}
}

func TestStreakExampleFromHistory(t *testing.T) {
	// Completed day1..day5, missed day6, completed day7 (= today).
	log := model.CompletionLog{}
	for day := 1; day <= 5; day++ {
		log[time.Date(2026, 8, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")] = map[string]bool{"a": true}
	}
	log["2026-08-07"] = map[string]bool{"a": true}

	if got := BestStreak("a", log); got != 5 {
		t.Fatalf("best streak = %d, want 5", got)
	}
	now := time.Date(2026, 8, 7, 20, 0, 0, 0, time.Local)
	if got := CurrentStreak("a", log, now); got != 1 {
		t.Fatalf("current streak = %d, want 1", got)
	}
}

func TestBestStreakEmptyLog(t *testing.T) {
	if got := BestStreak("a", model.CompletionLog{}); got != 0 {
		t.Fatalf("best streak on empty log = %d, want 0", got)
	}
}

func TestBestStreakIgnoresOtherHabits(t *testing.T) {
	log := model.CompletionLog{
		"2026-08-28": {"b": true},
		"2026-08-29": {"a": true, "b": true},
		"2026-08-30": {"a": true},
		"2026-08-31": {"b": true},
	}
	if got := BestStreak("a", log); got != 2 {
		t.Fatalf("best streak = %d, want 2", got)
	}
}

func TestBestStreakCrossesMonthBoundary(t *testing.T) {
	log := model.CompletionLog{
		"2026-02-27": {"a": true},
		"2026-02-28": {"a": true},
		"2026-03-01": {"a": true},
	}
	if got := BestStreak("a", log); got != 3 {
		t.Fatalf("best streak = %d, want 3 across the month boundary", got)
	}
}

func TestHabitRate(t *testing.T) {
	log := model.CompletionLog{
		"2026-08-29": {"a": true},
		"2026-08-31": {"a": true},
	}
	got, err := HabitRate("a", log, "2026-08-29", "2026-08-31")
	if err != nil {
		t.Fatalf("habit rate failed: %v", err)
	}
	if got != 67 {
		t.Fatalf("rate = %d, want 67", got)
	}

	empty, err := HabitRate("a", log, "2026-09-02", "2026-09-01")
	if err != nil {
		t.Fatalf("habit rate failed: %v", err)
	}
	if empty != 0 {
		t.Fatalf("empty-range rate = %d, want 0", empty)
	}
}

func TestStatsBundle(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	log := model.CompletionLog{
		"2026-08-30": {"a": true},
		"2026-08-31": {"a": true},
	}
	stats := Stats("a", log, 7, now)
	if stats.CurrentStreak != 2 || stats.BestStreak != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Rate != 29 { // 2/7 = 28.6%
		t.Fatalf("rate = %d, want 29", stats.Rate)
	}
}
