package models

import "time"

// Animal lifecycle statuses.
const (
	StatusForAdoption    = "FOR_ADOPTION"
	StatusAdopted        = "ADOPTED"
	StatusQuarantine     = "QUARANTINE"
	StatusNotForAdoption = "NOT_FOR_ADOPTION"
)

// Animal types.
const (
	TypeDog = "DOG"
	TypeCat = "CAT"
)

// Genders.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Residence values.
const (
	ResidenceShelter       = "SHELTER"
	ResidenceTemporaryHome = "TEMPORARY_HOME"
)

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s string) bool {
	switch s {
	case StatusForAdoption, StatusAdopted, StatusQuarantine, StatusNotForAdoption:
		return true
	}
	return false
}

// ValidAnimalType reports whether t is a known animal type.
func ValidAnimalType(t string) bool {
	return t == TypeDog || t == TypeCat
}

// ValidGender reports whether g is a known gender.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// ValidResidence reports whether r is a known residence.
func ValidResidence(r string) bool {
	return r == ResidenceShelter || r == ResidenceTemporaryHome
}

// Animal represents the animals table, the central registry entity.
// Status, adopter and temporary home are the only fields mutated through
// defined transitions after intake; animals are not hard-deleted in normal
// operation.
type Animal struct {
	ID   string `gorm:"primaryKey;size:8" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex;not null" json:"slug"`

	AnimalType string `gorm:"size:50;not null" json:"animal_type"`
	Gender     string `gorm:"size:50;not null" json:"gender"`
	Breed      string `gorm:"size:255" json:"breed,omitempty"`

	BirthDate   Date   `gorm:"type:date;not null" json:"birth_date"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Status      string `gorm:"size:50;not null;default:'NOT_FOR_ADOPTION'" json:"status"`

	LocationWhereFound string `gorm:"size:255" json:"location_where_found,omitempty"`
	DateWhenFound      *Date  `gorm:"type:date" json:"date_when_found,omitempty"`

	Residence           string `gorm:"size:50;not null;default:'SHELTER'" json:"residence"`
	DescriptionOfHealth string `gorm:"type:text" json:"description_of_health,omitempty"`

	ImageURL string `gorm:"size:512" json:"image,omitempty"`

	Size       string `gorm:"size:50" json:"size,omitempty"`
	Chip       bool   `gorm:"default:false" json:"chip"`
	Neutered   bool   `gorm:"default:false" json:"neutered"`
	Vaccinated bool   `gorm:"default:false" json:"vaccinated"`
	Dewormed   bool   `gorm:"default:false" json:"dewormed"`
	Character  string `gorm:"size:255" json:"character,omitempty"`
	ForWho     string `gorm:"size:255" json:"for_who,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AddedByID       *uint   `gorm:"index" json:"added_by_id,omitempty"`
	AdoptedByID     *string `gorm:"size:40;index" json:"adopted_by_id,omitempty"`
	TemporaryHomeID *string `gorm:"size:40;index" json:"temporary_home_id,omitempty"`

	// Relationships
	AddedBy       *User          `gorm:"foreignKey:AddedByID" json:"added_by,omitempty"`
	AdoptedBy     *Adopter       `gorm:"foreignKey:AdoptedByID" json:"adopted_by,omitempty"`
	TemporaryHome *TemporaryHome `gorm:"foreignKey:TemporaryHomeID" json:"temporary_home,omitempty"`
	HealthCard    *HealthCard    `gorm:"foreignKey:AnimalID" json:"health_card,omitempty"`
}

// TableName specifies the table name for Animal model
func (Animal) TableName() string {
	return "animals"
}
