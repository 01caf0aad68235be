package model

// CompletionLog maps a date key (YYYY-MM-DD) to the set of habit ids marked
// complete that day. Invariant: a date key is present iff its set is
// non-empty. The only mutation is Toggle; accessors never modify their
// input, so callers can compare references to detect change.
type CompletionLog map[string]map[string]bool

// IsCompleted reports whether habitID is marked complete on dateKey.
func IsCompleted(log CompletionLog, dateKey, habitID string) bool {
	return log[dateKey][habitID]
}

// Toggle returns a new log with habitID added to (or removed from) the set
// at dateKey. A set left empty is pruned along with its date key. Applying
// Toggle twice with the same arguments restores the original contents.
func Toggle(log CompletionLog, dateKey, habitID string) CompletionLog {
	next := make(CompletionLog, len(log)+1)
	for key, set := range log {
		next[key] = set
	}

	day := make(map[string]bool, len(log[dateKey])+1)
	for id := range log[dateKey] {
		day[id] = true
	}
	if day[habitID] {
		delete(day, habitID)
	} else {
		day[habitID] = true
	}

	if len(day) == 0 {
		delete(next, dateKey)
	} else {
		next[dateKey] = day
	}
	return next
}

// RemoveHabit returns a new log with every occurrence of habitID removed.
// Days whose set becomes empty are pruned entirely.
func RemoveHabit(log CompletionLog, habitID string) CompletionLog {
	next := make(CompletionLog, len(log))
	for key, set := range log {
		if !set[habitID] {
			next[key] = set
			continue
		}
		day := make(map[string]bool, len(set)-1)
		for id := range set {
			if id != habitID {
				day[id] = true
			}
		}
		if len(day) > 0 {
			next[key] = day
		}
	}
	return next
}

// CompletedCount returns how many days in the log have habitID completed.
func CompletedCount(log CompletionLog, habitID string) int {
	count := 0
	for _, set := range log {
		if set[habitID] {
			count++
		}
	}
	return count
}
