// Package rollup computes aggregate series and streak statistics from the
// raw completion log. Every function is a pure computation over its inputs:
// same habits, log, and window always produce the same result, and inputs
// are never mutated.
package rollup

import (
	"math"

	"github.com/sandeepkv93/habitd/internal/model"
)

type DailyPoint struct {
	Date      string
	Label     string
	Completed int
	Total     int
	Rate      int
}

type WeeklyPoint struct {
	WeekStart     string
	Label         string
	Completed     int
	TotalPossible int
	Rate          int
	PerHabit      map[string]int
}

type MonthlyPoint struct {
	MonthStart    string
	Label         string
	Completed     int
	TotalPossible int
	Rate          int
	DaysInMonth   int
	PerHabit      map[string]int
}

type HabitStats struct {
	CurrentStreak int
	BestStreak    int
	Rate          int
}

type DaySummary struct {
	Total     int
	Completed int
	Remaining int
	Rate      int
}

// rate rounds 100*completed/total half away from zero. A zero total is a
// valid degenerate state and yields 0.
func rate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// activeIDs returns the ids of habits with Active set. Inactive habits are
// excluded from every rollup, numerator and denominator alike.
func activeIDs(habits []model.Habit) []string {
	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		if h.Active {
			ids = append(ids, h.ID)
		}
	}
	return ids
}
