package rollup

import (
	"sort"
	"time"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
)

// maxStreakLookback bounds the backward walk in CurrentStreak so it always
// terminates. Roughly ten years; a real streak cannot reach it through the
// UI without the log itself being that long.
const maxStreakLookback = 3660

// CurrentStreak counts consecutive completed days ending on the day of now.
// A day of now without a completion means the streak is 0.
func CurrentStreak(habitID string, log model.CompletionLog, now time.Time) int {
	streak := 0
	day := datekey.StartOfDay(now)
	for i := 0; i < maxStreakLookback; i++ {
		if !model.IsCompleted(log, datekey.Format(day), habitID) {
			break
		}
		streak++
		day = datekey.AddDays(day, -1)
	}
	return streak
}

// BestStreak finds the longest run of calendar-consecutive days on which
// habitID was completed, across the whole log. A gap of even one day resets
// the run.
func BestStreak(habitID string, log model.CompletionLog) int {
	keys := make([]string, 0, len(log))
	for key, set := range log {
		if set[habitID] {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return 0
	}
	// Date keys sort lexicographically in calendar order.
	sort.Strings(keys)

	best := 1
	run := 1
	prev, err := datekey.Parse(keys[0])
	if err != nil {
		return 0
	}
	for _, key := range keys[1:] {
		day, err := datekey.Parse(key)
		if err != nil {
			continue
		}
		if datekey.Format(datekey.AddDays(prev, 1)) == datekey.Format(day) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = day
	}
	return best
}

// HabitRate returns the percentage of days in the inclusive window on which
// habitID was completed.
func HabitRate(habitID string, log model.CompletionLog, startKey, endKey string) (int, error) {
	keys, err := datekey.RangeInclusive(startKey, endKey)
	if err != nil {
		return 0, err
	}
	completed := 0
	for _, key := range keys {
		if model.IsCompleted(log, key, habitID) {
			completed++
		}
	}
	return rate(completed, len(keys)), nil
}

// Stats bundles the streak and windowed rate figures for one habit.
func Stats(habitID string, log model.CompletionLog, windowDays int, now time.Time) HabitStats {
	startKey, endKey := datekey.LastNDays(now, windowDays)
	r, err := HabitRate(habitID, log, startKey, endKey)
	if err != nil {
		r = 0
	}
	return HabitStats{
		CurrentStreak: CurrentStreak(habitID, log, now),
		BestStreak:    BestStreak(habitID, log),
		Rate:          r,
	}
}
