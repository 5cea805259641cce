package models

import "time"

// Allergy categories.
const (
	AllergyCategoryFood       = "FOOD"
	AllergyCategoryContact    = "CONTACT"
	AllergyCategoryInhalation = "INHALATION"
)

// ValidAllergyCategory reports whether c is a known allergy category.
func ValidAllergyCategory(c string) bool {
	switch c {
	case AllergyCategoryFood, AllergyCategoryContact, AllergyCategoryInhalation:
		return true
	}
	return false
}

// Allergy is a shelter-wide catalog entry, unique on (category, name).
type Allergy struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"size:50;not null;uniqueIndex:idx_allergy_category_name" json:"category"`
	Name        string    `gorm:"size:255;not null;uniqueIndex:idx_allergy_category_name" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Allergy model
func (Allergy) TableName() string {
	return "allergies"
}

// Medication is a shelter-wide catalog entry, unique on name.
type Medication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Medication model
func (Medication) TableName() string {
	return "medications"
}

// Vaccination is a shelter-wide catalog entry, unique on name.
type Vaccination struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Vaccination model
func (Vaccination) TableName() string {
	return "vaccinations"
}
