package rollup

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
)

// Weekly computes one point per week, oldest first. The last point is the
// week containing now (possibly partial); earlier weeks step back by exactly
// seven days, so a week always spans seven calendar days regardless of month
// boundaries.
func Weekly(habits []model.Habit, log model.CompletionLog, weeksBack, weekStartsOn int, now time.Time) []WeeklyPoint {
	if weeksBack < 1 {
		weeksBack = 1
	}
	ids := activeIDs(habits)
	current := datekey.StartOfWeek(now, weekStartsOn)

	points := make([]WeeklyPoint, 0, weeksBack)
	for i := weeksBack - 1; i >= 0; i-- {
		start := datekey.AddDays(current, -7*i)
		end := datekey.AddDays(start, 6)

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

		totalPossible := len(ids) * 7
		points = append(points, WeeklyPoint{
			WeekStart:     datekey.Format(start),
			Label:         fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2")),
			Completed:     completed,
			TotalPossible: totalPossible,
			Rate:          rate(completed, totalPossible),
			PerHabit:      perHabit,
		})
	}
	return points
}
