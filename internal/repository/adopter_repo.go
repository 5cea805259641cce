package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdopterNotFound = errors.New("adopter not found")

type AdopterRepository struct {
	db *gorm.DB
}

func NewAdopterRepo(db *gorm.DB) *AdopterRepository {
	return &AdopterRepository{db: db}
}

// GetAllAdopters retrieves all adopters ordered by name
func (r *AdopterRepository) GetAllAdopters() ([]models.Adopter, error) {
	var adopters []models.Adopter
	err := r.db.Order("name ASC").Find(&adopters).Error
	return adopters, err
}

// GetAdopterByID retrieves an adopter by ID
func (r *AdopterRepository) GetAdopterByID(id string) (*models.Adopter, error) {
	var adopter models.Adopter
	err := r.db.Where("id = ?", id).First(&adopter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdopterNotFound
		}
		return nil, err
	}
	return &adopter, nil
}

// FindAdopterByIdentity looks up an adopter by the (name, phone, address)
// uniqueness key
func (r *AdopterRepository) FindAdopterByIdentity(name, phone, address string) (*models.Adopter, error) {
	var adopter models.Adopter
	err := r.db.Where("name = ? AND phone_number = ? AND address = ?", name, phone, address).
		First(&adopter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdopterNotFound
		}
		return nil, err
	}
	return &adopter, nil
}

// CreateAdopter creates a new adopter
func (r *AdopterRepository) CreateAdopter(adopter *models.Adopter) error {
	return r.db.Create(adopter).Error
}

// UpdateAdopter updates an existing adopter
func (r *AdopterRepository) UpdateAdopter(adopter *models.Adopter) error {
	return r.db.Save(adopter).Error
}

// DeleteAdopter removes an adopter
func (r *AdopterRepository) DeleteAdopter(id string) error {
	return r.db.Delete(&models.Adopter{}, "id = ?", id).Error
}
