package models

import "time"

// TemporaryHome represents the temporary_homes table.
// Unique on (owner, phone_number).
type TemporaryHome struct {
	ID          string `gorm:"primaryKey;size:40" json:"id"`
	Owner       string `gorm:"size:255;not null;uniqueIndex:idx_home_owner_phone" json:"owner"`
	PhoneNumber string `gorm:"size:9;not null;uniqueIndex:idx_home_owner_phone" json:"phone_number"`

	City      string `gorm:"size:255;not null" json:"city"`
	Street    string `gorm:"size:255;not null" json:"street"`
	Building  string `gorm:"size:20;not null" json:"building"`
	Apartment string `gorm:"size:10" json:"apartment,omitempty"`
	ZipCode   string `gorm:"size:6;not null" json:"zip_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for TemporaryHome model
func (TemporaryHome) TableName() string {
	return "temporary_homes"
}
