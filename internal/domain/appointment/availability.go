package appointment

import "time"

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

// TimeSlot is one grid position of the availability response. Slots taken by
// a confirmed appointment are returned with Available=false so the UI can
// show them greyed out; structurally blocked times (closures, breaks,
// absences) are never generated at all.
type TimeSlot struct {
	Time      string `json:"time"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}
