package schedule

// SlotStepMinutes is the global booking grid. It is a product constant,
// independent of any service's duration.
const SlotStepMinutes = 30

// Candidates generates every start offset t such that t sits on the step
// grid anchored at its interval's start and t+duration still fits inside
// that interval. Intervals are never merged: a break hard-splits the grid
// even when the pieces touch.
func Candidates(open []Interval, duration, step int) []int {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var out []int
	for _, iv := range open {
		for t := iv.Start; t+duration <= iv.End; t += step {
			out = append(out, t)
		}
	}
	return out
}

// FilterPast drops candidates whose start is not strictly after now. Only
// applied when the target date is today in business time.
func FilterPast(starts []int, nowMinutes int) []int {
	var out []int
	for _, t := range starts {
		if t > nowMinutes {
			out = append(out, t)
		}
	}
	return out
}

// Conflicts reports whether [start, start+duration) overlaps any busy
// interval. Shared endpoints are not conflicts.
func Conflicts(start, duration int, busy []Interval) bool {
	slot := Interval{Start: start, End: start + duration}
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}

// FilterConflicts removes candidates that overlap a busy interval,
// preserving order. This filter is advisory; the storage-layer constraint
// is the final arbiter at booking time.
func FilterConflicts(starts []int, duration int, busy []Interval) []int {
	var out []int
	for _, t := range starts {
		if !Conflicts(t, duration, busy) {
			out = append(out, t)
		}
	}
	return out
}
