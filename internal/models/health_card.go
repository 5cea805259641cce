package models

import "time"

// Doctors known to the shelter.
const (
	DoctorPiotr      = "PIOTR"
	DoctorJoanna     = "JOANNA"
	DoctorAleksandra = "ALEKSANDRA"
)

// ValidDoctor reports whether d is a known doctor.
func ValidDoctor(d string) bool {
	switch d {
	case DoctorPiotr, DoctorJoanna, DoctorAleksandra:
		return true
	}
	return false
}

// HealthCard represents the health_cards table. Exactly one exists per
// animal, created in the same transaction as the animal itself. It owns
// the association rows and the visit log below; all are removed with it.
type HealthCard struct {
	ID       string `gorm:"primaryKey;size:10" json:"id"`
	AnimalID string `gorm:"size:8;not null;uniqueIndex" json:"animal_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Allergies    []HealthCardAllergy     `gorm:"foreignKey:HealthCardID" json:"allergies,omitempty"`
	Medications  []HealthCardMedication  `gorm:"foreignKey:HealthCardID" json:"medications,omitempty"`
	Vaccinations []HealthCardVaccination `gorm:"foreignKey:HealthCardID" json:"vaccinations,omitempty"`
	Visits       []VeterinaryVisit       `gorm:"foreignKey:HealthCardID" json:"veterinary_visits,omitempty"`
}

// TableName specifies the table name for HealthCard model
func (HealthCard) TableName() string {
	return "health_cards"
}

// HealthCardAllergy links a health card to an allergy catalog entry with a
// per-link description. Unique at the (health_card, allergy) grain.
type HealthCardAllergy struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	HealthCardID string `gorm:"size:10;not null;uniqueIndex:idx_hc_allergy" json:"-"`
	AllergyID    uint   `gorm:"not null;uniqueIndex:idx_hc_allergy" json:"allergy_id"`
	Description  string `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Allergy Allergy `gorm:"foreignKey:AllergyID;constraint:OnDelete:CASCADE" json:"allergy"`
}

// TableName specifies the table name for HealthCardAllergy model
func (HealthCardAllergy) TableName() string {
	return "health_card_allergies"
}

// HealthCardMedication links a health card to a medication catalog entry.
// Unique at the (health_card, medication) grain.
type HealthCardMedication struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	HealthCardID string `gorm:"size:10;not null;uniqueIndex:idx_hc_medication" json:"-"`
	MedicationID uint   `gorm:"not null;uniqueIndex:idx_hc_medication" json:"medication_id"`
	Description  string `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Medication Medication `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"medication"`
}

// TableName specifies the table name for HealthCardMedication model
func (HealthCardMedication) TableName() string {
	return "health_card_medications"
}

// HealthCardVaccination links a health card to a vaccination catalog entry.
// The date is part of the key so the same vaccination can recur over time.
type HealthCardVaccination struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	HealthCardID    string `gorm:"size:10;not null;uniqueIndex:idx_hc_vaccination" json:"-"`
	VaccinationID   uint   `gorm:"not null;uniqueIndex:idx_hc_vaccination" json:"vaccination_id"`
	VaccinationDate Date   `gorm:"type:date;not null;uniqueIndex:idx_hc_vaccination" json:"vaccination_date"`
	Description     string `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vaccination Vaccination `gorm:"foreignKey:VaccinationID;constraint:OnDelete:CASCADE" json:"vaccination"`
}

// TableName specifies the table name for HealthCardVaccination model
func (HealthCardVaccination) TableName() string {
	return "health_card_vaccinations"
}

// VeterinaryVisit is an append-only visit log entry owned by a health card.
type VeterinaryVisit struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	HealthCardID string `gorm:"size:10;not null;index" json:"health_card_id"`
	Doctor       string `gorm:"size:50;not null" json:"doctor"`
	Date         Date   `gorm:"type:date;not null" json:"date"`
	Description  string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for VeterinaryVisit model
func (VeterinaryVisit) TableName() string {
	return "veterinary_visits"
}
