package models

import "time"

// ShopHours is the shop-wide default for one weekday. Barber working hours
// are further constrained to this window.
type ShopHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	Weekday int  `gorm:"uniqueIndex" json:"weekday"`

	IsOpen     bool   `json:"is_open"`
	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShopClosure blocks all barbers on a specific date. Empty start/end means
// the whole day is closed.
type ShopClosure struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"index;not null" json:"date"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// BarberAbsence blocks a single barber on a specific date. Empty start/end
// means the whole day.
type BarberAbsence struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	BarberID uint      `gorm:"index" json:"barber_id"`
	Date     time.Time `gorm:"index;not null" json:"date"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
