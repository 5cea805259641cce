package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrHealthCardNotFound = errors.New("health card not found")
	ErrUnknownAllergy     = errors.New("unknown allergy reference")
	ErrUnknownMedication  = errors.New("unknown medication reference")
	ErrUnknownVaccination = errors.New("unknown vaccination reference")
)

// AllergyChange is one submitted allergy entry for reconciliation.
// A nil description leaves a previously stored value untouched.
type AllergyChange struct {
	AllergyID   uint
	Description *string
}

// MedicationChange is one submitted medication entry.
type MedicationChange struct {
	MedicationID uint
	Description  *string
}

// VaccinationChange is one submitted vaccination entry. The date is part of
// the natural key: the same vaccination on another date is a new row.
type VaccinationChange struct {
	VaccinationID uint
	Date          models.Date
	Description   *string
}

// VisitChange is one submitted veterinary visit entry.
type VisitChange struct {
	Doctor      string
	Date        models.Date
	Description string
}

// HealthCardChanges carries all nested entries of one reconcile request.
type HealthCardChanges struct {
	Allergies    []AllergyChange
	Medications  []MedicationChange
	Vaccinations []VaccinationChange
	Visits       []VisitChange
}

type HealthCardRepository struct {
	db *gorm.DB
}

func NewHealthCardRepo(db *gorm.DB) *HealthCardRepository {
	return &HealthCardRepository{db: db}
}

// GetHealthCardByAnimalID retrieves the full nested card for one animal
func (r *HealthCardRepository) GetHealthCardByAnimalID(animalID string) (*models.HealthCard, error) {
	var card models.HealthCard
	err := r.db.Where("animal_id = ?", animalID).
		Preload("Allergies.Allergy").
		Preload("Medications.Medication").
		Preload("Vaccinations.Vaccination").
		Preload("Visits").
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// GetHealthCardByID retrieves a card by its own id, without relations
func (r *HealthCardRepository) GetHealthCardByID(id string) (*models.HealthCard, error) {
	var card models.HealthCard
	err := r.db.Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// CreateHealthCard persists a new health card
func (r *HealthCardRepository) CreateHealthCard(card *models.HealthCard) error {
	return r.db.Create(card).Error
}

// Reconcile applies the submitted entries to the stored associations as one
// all-or-nothing transaction. Each entry is upserted by its natural key:
// existing rows get their description overwritten, missing rows are created,
// and stored rows absent from the submission are left untouched. Within one
// request a duplicated key means the last submitted entry wins. A reference
// to a catalog id that does not exist rolls the whole batch back.
func (r *HealthCardRepository) Reconcile(cardID string, changes HealthCardChanges) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, ch := range changes.Allergies {
			if err := tx.First(&models.Allergy{}, ch.AllergyID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownAllergy
				}
				return err
			}
			var row models.HealthCardAllergy
			err := tx.Where("health_card_id = ? AND allergy_id = ?", cardID, ch.AllergyID).First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = models.HealthCardAllergy{HealthCardID: cardID, AllergyID: ch.AllergyID}
				if ch.Description != nil {
					row.Description = *ch.Description
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if ch.Description != nil {
					if err := tx.Model(&row).Update("description", *ch.Description).Error; err != nil {
						return err
					}
				}
			}
		}

		for _, ch := range changes.Medications {
			if err := tx.First(&models.Medication{}, ch.MedicationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownMedication
				}
				return err
			}
			var row models.HealthCardMedication
			err := tx.Where("health_card_id = ? AND medication_id = ?", cardID, ch.MedicationID).First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = models.HealthCardMedication{HealthCardID: cardID, MedicationID: ch.MedicationID}
				if ch.Description != nil {
					row.Description = *ch.Description
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if ch.Description != nil {
					if err := tx.Model(&row).Update("description", *ch.Description).Error; err != nil {
						return err
					}
				}
			}
		}

		for _, ch := range changes.Vaccinations {
			if err := tx.First(&models.Vaccination{}, ch.VaccinationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownVaccination
				}
				return err
			}
			var row models.HealthCardVaccination
			err := tx.Where("health_card_id = ? AND vaccination_id = ? AND vaccination_date = ?",
				cardID, ch.VaccinationID, ch.Date).First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = models.HealthCardVaccination{
					HealthCardID:    cardID,
					VaccinationID:   ch.VaccinationID,
					VaccinationDate: ch.Date,
				}
				if ch.Description != nil {
					row.Description = *ch.Description
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if ch.Description != nil {
					if err := tx.Model(&row).Update("description", *ch.Description).Error; err != nil {
						return err
					}
				}
			}
		}

		// Visits are append-oriented: an entry identical to a stored one is
		// a no-op, anything else is a new log row.
		for _, ch := range changes.Visits {
			var row models.VeterinaryVisit
			err := tx.Where("health_card_id = ? AND doctor = ? AND date = ? AND description = ?",
				cardID, ch.Doctor, ch.Date, ch.Description).First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = models.VeterinaryVisit{
					HealthCardID: cardID,
					Doctor:       ch.Doctor,
					Date:         ch.Date,
					Description:  ch.Description,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			}
		}

		return nil
	})
}
