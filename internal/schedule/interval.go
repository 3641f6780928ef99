package schedule

// Interval is a half-open [Start, End) range in minutes since midnight.
// End-exclusive math keeps boundary slots from double counting: a booking
// ending 12:00 does not conflict with one starting 12:00.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

// Overlaps reports whether two half-open intervals share any minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Intersect returns the common sub-interval, possibly empty.
func Intersect(a, b Interval) Interval {
	out := Interval{Start: a.Start, End: a.End}
	if b.Start > out.Start {
		out.Start = b.Start
	}
	if b.End < out.End {
		out.End = b.End
	}
	return out
}

// Subtract removes block from iv, yielding zero, one or two pieces.
func Subtract(iv, block Interval) []Interval {
	if block.Empty() || !iv.Overlaps(block) {
		if iv.Empty() {
			return nil
		}
		return []Interval{iv}
	}

	var out []Interval
	left := Interval{Start: iv.Start, End: block.Start}
	if !left.Empty() {
		out = append(out, left)
	}
	right := Interval{Start: block.End, End: iv.End}
	if !right.Empty() {
		out = append(out, right)
	}
	return out
}

// SubtractAll removes every block from every interval, preserving
// chronological order. Zero-length remainders are discarded.
func SubtractAll(intervals []Interval, blocks []Interval) []Interval {
	out := intervals
	for _, b := range blocks {
		var next []Interval
		for _, iv := range out {
			next = append(next, Subtract(iv, b)...)
		}
		out = next
	}
	return out
}
