package service

import (
	"fmt"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
)

// VisitService manages standalone veterinary visit records.
type VisitService struct {
	visitRepo      *repository.VisitRepository
	healthCardRepo *repository.HealthCardRepository
	auditRepo      *repository.AuditRepository
}

func NewVisitService(
	visitRepo *repository.VisitRepository,
	healthCardRepo *repository.HealthCardRepository,
	auditRepo *repository.AuditRepository,
) *VisitService {
	return &VisitService{
		visitRepo:      visitRepo,
		healthCardRepo: healthCardRepo,
		auditRepo:      auditRepo,
	}
}

// ListVisits retrieves visits, optionally for one health card
func (s *VisitService) ListVisits(healthCardID string) ([]models.VeterinaryVisit, error) {
	return s.visitRepo.ListVisits(healthCardID)
}

func (s *VisitService) GetVisitByID(id uint) (*models.VeterinaryVisit, error) {
	return s.visitRepo.GetVisitByID(id)
}

// CreateVisit validates and appends a visit to a health card's log
func (s *VisitService) CreateVisit(visit *models.VeterinaryVisit, userID uint) error {
	if !models.ValidDoctor(visit.Doctor) {
		return ErrInvalidDoctor
	}
	if visit.Date.After(models.Today()) {
		return ErrVisitDateInFuture
	}
	if _, err := s.healthCardRepo.GetHealthCardByID(visit.HealthCardID); err != nil {
		return err
	}

	if err := s.visitRepo.CreateVisit(visit); err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "visit_create",
		fmt.Sprintf("Logged visit by %s on %s for card %s", visit.Doctor, visit.Date, visit.HealthCardID))
	return nil
}

func (s *VisitService) UpdateVisit(visit *models.VeterinaryVisit, userID uint) error {
	if !models.ValidDoctor(visit.Doctor) {
		return ErrInvalidDoctor
	}
	if visit.Date.After(models.Today()) {
		return ErrVisitDateInFuture
	}
	existing, err := s.visitRepo.GetVisitByID(visit.ID)
	if err != nil {
		return err
	}
	visit.HealthCardID = existing.HealthCardID

	if err := s.visitRepo.UpdateVisit(visit); err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "visit_update",
		fmt.Sprintf("Updated visit %d", visit.ID))
	return nil
}

func (s *VisitService) DeleteVisit(id uint, userID uint) error {
	if _, err := s.visitRepo.GetVisitByID(id); err != nil {
		return err
	}
	if err := s.visitRepo.DeleteVisit(id); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "visit_delete",
		fmt.Sprintf("Deleted visit %d", id))
	return nil
}
