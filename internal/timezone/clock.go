package timezone

import "time"

// Clock abstracts "now" so slot filtering is deterministic in tests.
// Production code passes SystemClock().
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(Location())
}

func SystemClock() Clock {
	return systemClock{}
}

// DateOf returns the Sao Paulo calendar day of an instant as "YYYY-MM-DD".
func DateOf(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// MinutesOf returns the Sao Paulo time-of-day of an instant as minutes
// since midnight.
func MinutesOf(t time.Time) int {
	local := t.In(Location())
	return local.Hour()*60 + local.Minute()
}
