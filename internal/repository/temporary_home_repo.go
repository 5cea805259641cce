package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var ErrTemporaryHomeNotFound = errors.New("temporary home not found")

type TemporaryHomeRepository struct {
	db *gorm.DB
}

func NewTemporaryHomeRepo(db *gorm.DB) *TemporaryHomeRepository {
	return &TemporaryHomeRepository{db: db}
}

// GetAllTemporaryHomes retrieves all temporary homes ordered by owner
func (r *TemporaryHomeRepository) GetAllTemporaryHomes() ([]models.TemporaryHome, error) {
	var homes []models.TemporaryHome
	err := r.db.Order("owner ASC").Find(&homes).Error
	return homes, err
}

// GetTemporaryHomeByID retrieves a temporary home by ID
func (r *TemporaryHomeRepository) GetTemporaryHomeByID(id string) (*models.TemporaryHome, error) {
	var home models.TemporaryHome
	err := r.db.Where("id = ?", id).First(&home).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemporaryHomeNotFound
		}
		return nil, err
	}
	return &home, nil
}

// FindTemporaryHomeByOwnerAndPhone looks up a home by the (owner, phone)
// uniqueness key
func (r *TemporaryHomeRepository) FindTemporaryHomeByOwnerAndPhone(owner, phone string) (*models.TemporaryHome, error) {
	var home models.TemporaryHome
	err := r.db.Where("owner = ? AND phone_number = ?", owner, phone).First(&home).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemporaryHomeNotFound
		}
		return nil, err
	}
	return &home, nil
}

// CreateTemporaryHome creates a new temporary home
func (r *TemporaryHomeRepository) CreateTemporaryHome(home *models.TemporaryHome) error {
	return r.db.Create(home).Error
}

// UpdateTemporaryHome updates an existing temporary home
func (r *TemporaryHomeRepository) UpdateTemporaryHome(home *models.TemporaryHome) error {
	return r.db.Save(home).Error
}

// DeleteTemporaryHome removes a temporary home
func (r *TemporaryHomeRepository) DeleteTemporaryHome(id string) error {
	return r.db.Delete(&models.TemporaryHome{}, "id = ?", id).Error
}
