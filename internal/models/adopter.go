package models

import "time"

// Adopter represents the adopters table.
// Unique on (name, phone_number, address) to prevent duplicate records.
// Referenced by zero or more animals; the reference is non-owning.
type Adopter struct {
	ID          string `gorm:"primaryKey;size:40" json:"id"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_adopter_identity" json:"name"`
	PhoneNumber string `gorm:"size:9;not null;uniqueIndex:idx_adopter_identity" json:"phone_number"`
	Address     string `gorm:"size:255;uniqueIndex:idx_adopter_identity" json:"address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Adopter model
func (Adopter) TableName() string {
	return "adopters"
}
