package models

import "time"

// GuestClient is a booking identity without a login: digits-only phone plus
// a bearer access token for later lookup and cancellation. Anonymization
// overwrites phone and token with a DELETED_<id> sentinel, keeping the row
// referentially intact for appointment history.
type GuestClient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:30;uniqueIndex;not null" json:"phone"`

	AccessToken *string `gorm:"size:64;index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
