package rollup

import (
	"github.com/sandeepkv93/habitd/internal/datekey"
	"github.com/sandeepkv93/habitd/internal/model"
)

// Daily computes one point per day of the inclusive window, oldest first.
func Daily(habits []model.Habit, log model.CompletionLog, startKey, endKey string) ([]DailyPoint, error) {
	keys, err := datekey.RangeInclusive(startKey, endKey)
	if err != nil {
		return nil, err
	}
	ids := activeIDs(habits)

	points := make([]DailyPoint, 0, len(keys))
	for _, key := range keys {
		completed := 0
		for _, id := range ids {
			if model.IsCompleted(log, key, id) {
				completed++
			}
		}
		day, err := datekey.Parse(key)
		if err != nil {
			return nil, err
		}
		points = append(points, DailyPoint{
			Date:      key,
			Label:     day.Format("Jan 2"),
			Completed: completed,
			Total:     len(ids),
			Rate:      rate(completed, len(ids)),
		})
	}
	return points, nil
}
