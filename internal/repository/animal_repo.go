package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var ErrAnimalNotFound = errors.New("animal not found")

// Sortable columns for animal listings.
var animalSortColumns = map[string]string{
	"name":       "name",
	"type":       "animal_type",
	"status":     "status",
	"birth_date": "birth_date",
}

// AnimalFilter narrows and orders animal listings.
type AnimalFilter struct {
	Name   string // substring match
	Slug   string
	Type   string
	Status string
	Breed  string
	SortBy string // name, type, status, birth_date
	Order  string // asc (default) or desc
}

type AnimalRepository struct {
	db *gorm.DB
}

func NewAnimalRepo(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

// CreateWithHealthCard persists a new animal and its health card as one
// transaction, so no animal ever exists without a card.
func (r *AnimalRepository) CreateWithHealthCard(animal *models.Animal, card *models.HealthCard) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(animal).Error; err != nil {
			return err
		}
		card.AnimalID = animal.ID
		return tx.Create(card).Error
	})
}

// ListAnimals retrieves animals matching the filter
func (r *AnimalRepository) ListAnimals(filter AnimalFilter) ([]models.Animal, error) {
	query := r.db.Model(&models.Animal{}).
		Preload("AdoptedBy").
		Preload("TemporaryHome")

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Slug != "" {
		query = query.Where("slug = ?", filter.Slug)
	}
	if filter.Type != "" {
		query = query.Where("animal_type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Breed != "" {
		query = query.Where("breed = ?", filter.Breed)
	}

	column, ok := animalSortColumns[filter.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if filter.Order == "desc" {
		direction = "DESC"
	}

	var animals []models.Animal
	err := query.Order(column + " " + direction).Find(&animals).Error
	return animals, err
}

// GetAnimalBySlug retrieves one animal with all its relations joined
func (r *AnimalRepository) GetAnimalBySlug(slug string) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.Where("slug = ?", slug).
		Preload("AddedBy").
		Preload("AdoptedBy").
		Preload("TemporaryHome").
		Preload("HealthCard").
		Preload("HealthCard.Allergies.Allergy").
		Preload("HealthCard.Medications.Medication").
		Preload("HealthCard.Vaccinations.Vaccination").
		Preload("HealthCard.Visits").
		First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	return &animal, nil
}

// GetAnimalByID retrieves one animal without relations
func (r *AnimalRepository) GetAnimalByID(id string) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.Where("id = ?", id).First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	return &animal, nil
}

// UpdateAnimal saves the full animal record
func (r *AnimalRepository) UpdateAnimal(animal *models.Animal) error {
	return r.db.Save(animal).Error
}

// DeleteAnimal removes an animal together with its health card, the card's
// association rows and its visit log, in one transaction.
func (r *AnimalRepository) DeleteAnimal(animal *models.Animal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var card models.HealthCard
		err := tx.Where("animal_id = ?", animal.ID).First(&card).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if err := tx.Where("health_card_id = ?", card.ID).Delete(&models.HealthCardAllergy{}).Error; err != nil {
				return err
			}
			if err := tx.Where("health_card_id = ?", card.ID).Delete(&models.HealthCardMedication{}).Error; err != nil {
				return err
			}
			if err := tx.Where("health_card_id = ?", card.ID).Delete(&models.HealthCardVaccination{}).Error; err != nil {
				return err
			}
			if err := tx.Where("health_card_id = ?", card.ID).Delete(&models.VeterinaryVisit{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&card).Error; err != nil {
				return err
			}
		}
		return tx.Delete(animal).Error
	})
}

// SlugExists reports whether another animal already uses the slug
func (r *AnimalRepository) SlugExists(slug string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.Animal{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// CountAnimalsByAdopter counts animals referencing an adopter
func (r *AnimalRepository) CountAnimalsByAdopter(adopterID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Animal{}).Where("adopted_by_id = ?", adopterID).Count(&count).Error
	return count, err
}

// CountAnimalsByTemporaryHome counts animals referencing a temporary home
func (r *AnimalRepository) CountAnimalsByTemporaryHome(homeID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Animal{}).Where("temporary_home_id = ?", homeID).Count(&count).Error
	return count, err
}
