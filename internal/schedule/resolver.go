package schedule

import "github.com/agendai-app/booking-api/internal/models"

// OpenIntervals merges the shop-wide hours, shop closures, one barber's
// working hours (with optional break) and that barber's absences into the
// disjoint windows where booking is permitted on one date.
//
// Everything is resolved to minute offsets; the caller already fetched the
// rows for the right weekday/date. A nil shop row, a closed weekday, a
// full-day closure, a missing working-hours row or a full-day absence all
// yield an empty result.
func OpenIntervals(
	shop *models.ShopHours,
	closures []models.ShopClosure,
	wh *models.WorkingHours,
	absences []models.BarberAbsence,
) []Interval {

	if shop == nil || !shop.IsOpen || shop.StartTime == "" || shop.EndTime == "" {
		return nil
	}

	var closureBlocks []Interval
	for _, cl := range closures {
		if cl.StartTime == "" || cl.EndTime == "" {
			return nil // full-day shop closure
		}
		closureBlocks = append(closureBlocks, Interval{
			Start: ToMinutes(cl.StartTime),
			End:   ToMinutes(cl.EndTime),
		})
	}

	if wh == nil || wh.StartTime == "" || wh.EndTime == "" {
		return nil
	}

	window := Intersect(
		Interval{Start: ToMinutes(wh.StartTime), End: ToMinutes(wh.EndTime)},
		Interval{Start: ToMinutes(shop.StartTime), End: ToMinutes(shop.EndTime)},
	)
	if window.Empty() {
		return nil
	}

	open := []Interval{window}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		open = SubtractAll(open, []Interval{{
			Start: ToMinutes(wh.BreakStart),
			End:   ToMinutes(wh.BreakEnd),
		}})
	}
	if shop.BreakStart != "" && shop.BreakEnd != "" {
		open = SubtractAll(open, []Interval{{
			Start: ToMinutes(shop.BreakStart),
			End:   ToMinutes(shop.BreakEnd),
		}})
	}

	for _, ab := range absences {
		if ab.StartTime == "" || ab.EndTime == "" {
			return nil // full-day absence
		}
		open = SubtractAll(open, []Interval{{
			Start: ToMinutes(ab.StartTime),
			End:   ToMinutes(ab.EndTime),
		}})
	}

	return SubtractAll(open, closureBlocks)
}

// Contains reports whether [start, start+duration) fits entirely inside one
// of the open intervals.
func Contains(open []Interval, start, duration int) bool {
	for _, iv := range open {
		if start >= iv.Start && start+duration <= iv.End {
			return true
		}
	}
	return false
}
