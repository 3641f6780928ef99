package timezone

import "time"

// BusinessTimezone is the single business clock for the whole platform.
// Shop hours, absences and slot filtering all assume this zone.
const BusinessTimezone = "America/Sao_Paulo"

const (
	DateLayout   = "2006-01-02"
	DateLayoutBR = "02/01/2006"
	TimeLayout   = "15:04"
)

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate interprets a "YYYY-MM-DD" string as that calendar day's local
// midnight in Sao Paulo and returns the equivalent UTC instant. Appointment
// dates are persisted in this form so that day-level storage does not depend
// on the server timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatDate is the inverse of ParseDate.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// FormatDateBR renders a stored date for user-facing messages.
func FormatDateBR(t time.Time) string {
	return t.In(Location()).Format(DateLayoutBR)
}

// Today returns the current Sao Paulo calendar day as "YYYY-MM-DD".
func Today() string {
	return Now().Format(DateLayout)
}

// NowMinutes returns the current Sao Paulo time-of-day as minutes since
// midnight. Used to drop past slots on the current day only.
func NowMinutes() int {
	now := Now()
	return now.Hour()*60 + now.Minute()
}

// At combines a stored date with an "HH:mm" string into the concrete
// Sao Paulo instant an appointment starts.
func At(date time.Time, hm string) time.Time {
	t, _ := time.Parse(TimeLayout, hm)
	d := date.In(Location())
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, Location())
}

// Weekday returns the day-of-week (0=Sunday) of a stored date as seen from
// the business timezone.
func Weekday(date time.Time) int {
	return int(date.In(Location()).Weekday())
}
