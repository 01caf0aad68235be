package rollup

import "github.com/sandeepkv93/habitd/internal/model"

// Summarize computes the single-day completion summary for dateKey over the
// currently active habits.
func Summarize(habits []model.Habit, log model.CompletionLog, dateKey string) DaySummary {
	ids := activeIDs(habits)
	completed := 0
	for _, id := range ids {
		if model.IsCompleted(log, dateKey, id) {
			completed++
		}
	}
	return DaySummary{
		Total:     len(ids),
		Completed: completed,
		Remaining: len(ids) - completed,
		Rate:      rate(completed, len(ids)),
	}
}
