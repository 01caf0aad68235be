package rollup

import (
	"time"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
)

// Monthly computes one point per calendar month, oldest first, ending with
// the month containing now. Each month's possible total uses that month's
// actual day count (28-31).
func Monthly(habits []model.Habit, log model.CompletionLog, monthsBack int, now time.Time) []MonthlyPoint {
	if monthsBack < 1 {
		monthsBack = 1
	}
	ids := activeIDs(habits)
	current := datekey.StartOfMonth(now)

	points := make([]MonthlyPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		days := datekey.DaysInMonth(start)
		end := datekey.AddDays(start, days-1)

		perHabit := make(map[string]int, len(ids))
		completed := 0
		for day := start; !day.After(end); day = datekey.AddDays(day, 1) {
			key := datekey.Format(day)
			for _, id := range ids {
				if model.IsCompleted(log, key, id) {
					perHabit[id]++
					completed++
				}
			}
		}

		totalPossible := len(ids) * days
		points = append(points, MonthlyPoint{
			MonthStart:    datekey.Format(start),
			Label:         start.Format("January 2006"),
			Completed:     completed,
			TotalPossible: totalPossible,
			Rate:          rate(completed, totalPossible),
			DaysInMonth:   days,
			PerHabit:      perHabit,
		})
	}
	return points
}
