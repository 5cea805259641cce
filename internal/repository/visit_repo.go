package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var ErrVisitNotFound = errors.New("veterinary visit not found")

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepo(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// ListVisits retrieves visits, optionally restricted to one health card,
// most recent first
func (r *VisitRepository) ListVisits(healthCardID string) ([]models.VeterinaryVisit, error) {
	query := r.db.Model(&models.VeterinaryVisit{})
	if healthCardID != "" {
		query = query.Where("health_card_id = ?", healthCardID)
	}
	var visits []models.VeterinaryVisit
	err := query.Order("date DESC").Find(&visits).Error
	return visits, err
}

// GetVisitByID retrieves a visit by ID
func (r *VisitRepository) GetVisitByID(id uint) (*models.VeterinaryVisit, error) {
	var visit models.VeterinaryVisit
	err := r.db.First(&visit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}
	return &visit, nil
}

// CreateVisit creates a new visit log entry
func (r *VisitRepository) CreateVisit(visit *models.VeterinaryVisit) error {
	return r.db.Create(visit).Error
}

// UpdateVisit updates an existing visit
func (r *VisitRepository) UpdateVisit(visit *models.VeterinaryVisit) error {
	return r.db.Save(visit).Error
}

// DeleteVisit removes a visit log entry
func (r *VisitRepository) DeleteVisit(id uint) error {
	return r.db.Delete(&models.VeterinaryVisit{}, id).Error
}
