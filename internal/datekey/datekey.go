// Package datekey provides day-granularity calendar arithmetic over
// YYYY-MM-DD date keys. Keys are built from local calendar fields, are
// lexicographically sortable, and round-trip exactly through Parse.
package datekey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDateKey = errors.New("datekey: invalid date key")

// Format renders t as a canonical YYYY-MM-DD key using t's own calendar
// fields, so the key names the same day the caller sees on a wall calendar.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse builds a local midnight date from a YYYY-MM-DD key. The key must
// have exactly three dash-separated numeric components.
func Parse(key string) (time.Time, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		if part == "" {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), nil
}

// AddDays shifts t by n calendar days (n may be negative) and truncates to
// day start. AddDate works on calendar fields, so the result is unaffected
// by daylight-saving transitions inside the interval.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t.AddDate(0, 0, n))
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns day start of the first day of the week containing t.
// weekStartsOn is 0 for Sunday or 1 for Monday.
func StartOfWeek(t time.Time, weekStartsOn int) time.Time {
	back := (int(t.Weekday()) - weekStartsOn + 7) % 7
	return AddDays(t, -back)
}

// StartOfMonth returns day start of the 1st of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of calendar days (28-31) in the month
// containing t, computed as the day before the 1st of the following month.
func DaysInMonth(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// RangeInclusive enumerates every date key from startKey to endKey in
// ascending order. Returns an empty slice when start is after end.
func RangeInclusive(startKey, endKey string) ([]string, error) {
	start, err := Parse(startKey)
	if err != nil {
		return nil, err
	}
	end, err := Parse(endKey)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0)
	for cursor := start; !cursor.After(end); cursor = AddDays(cursor, 1) {
		keys = append(keys, Format(cursor))
	}
	return keys, nil
}

// LastNDays returns the window covering the most recent n days, ending on
// the day of now inclusive.
func LastNDays(now time.Time, n int) (startKey, endKey string) {
	if n < 1 {
		n = 1
	}
	end := StartOfDay(now)
	return Format(AddDays(end, -(n - 1))), Format(end)
}
