package models

import "time"

// Appointment stores the booked slot. Date is the Sao Paulo calendar day
// persisted as its UTC-converted local midnight; start/end stay "HH:mm"
// strings so history never shifts when a service duration changes.
//
// The partial unique index on (barber_id, date, start_time) restricted to
// CONFIRMED rows is the authoritative double-booking guard; application
// pre-checks are advisory.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint `json:"client_id"`
	Client   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	GuestClientID *uint        `json:"guest_client_id"`
	GuestClient   *GuestClient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"guest_client,omitempty"`

	BarberID uint `gorm:"not null" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date      time.Time `gorm:"not null;index" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	Status       string `gorm:"size:30;default:'CONFIRMED'" json:"status"`
	CancelReason string `gorm:"size:255" json:"cancel_reason"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
