package models

import "time"

// WorkingHours is one barber's recurring window for one weekday. A missing
// row means the barber does not work that day. Times are "HH:mm" strings;
// interval math converts to minute offsets but never persists them.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_weekday" json:"barber_id"`
	Weekday  int  `gorm:"uniqueIndex:idx_barber_weekday" json:"weekday"`

	StartTime  string `gorm:"size:5;not null" json:"start_time"`
	EndTime    string `gorm:"size:5;not null" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
