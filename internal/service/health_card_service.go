package service

import (
	"errors"
	"fmt"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
)

var (
	ErrVisitDateInFuture       = errors.New("date of visit cannot be in the future")
	ErrVaccinationDateInFuture = errors.New("date of vaccination cannot be in the future")
	ErrInvalidDoctor           = errors.New("invalid doctor")
)

type HealthCardService struct {
	healthCardRepo *repository.HealthCardRepository
	animalRepo     *repository.AnimalRepository
	auditRepo      *repository.AuditRepository
}

func NewHealthCardService(
	healthCardRepo *repository.HealthCardRepository,
	animalRepo *repository.AnimalRepository,
	auditRepo *repository.AuditRepository,
) *HealthCardService {
	return &HealthCardService{
		healthCardRepo: healthCardRepo,
		animalRepo:     animalRepo,
		auditRepo:      auditRepo,
	}
}

// GetHealthCard retrieves the full nested card for an animal addressed by
// id or slug
func (s *HealthCardService) GetHealthCard(animalRef string) (*models.HealthCard, error) {
	animal, err := s.resolveAnimal(animalRef)
	if err != nil {
		return nil, err
	}
	return s.healthCardRepo.GetHealthCardByAnimalID(animal.ID)
}

// UpdateHealthCard validates the submitted entries and reconciles them
// against the stored associations in one all-or-nothing transaction.
func (s *HealthCardService) UpdateHealthCard(animalRef string, changes repository.HealthCardChanges, userID uint) (*models.HealthCard, error) {
	animal, err := s.resolveAnimal(animalRef)
	if err != nil {
		return nil, err
	}
	card, err := s.healthCardRepo.GetHealthCardByAnimalID(animal.ID)
	if err != nil {
		return nil, err
	}

	// All validation happens before any persistence.
	today := models.Today()
	for _, ch := range changes.Vaccinations {
		if ch.Date.After(today) {
			return nil, ErrVaccinationDateInFuture
		}
	}
	for _, ch := range changes.Visits {
		if !models.ValidDoctor(ch.Doctor) {
			return nil, ErrInvalidDoctor
		}
		if ch.Date.After(today) {
			return nil, ErrVisitDateInFuture
		}
	}

	if err := s.healthCardRepo.Reconcile(card.ID, changes); err != nil {
		return nil, err
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "health_card_update",
		fmt.Sprintf("Updated health card %s of animal %s", card.ID, animal.ID))

	return s.healthCardRepo.GetHealthCardByAnimalID(animal.ID)
}

// resolveAnimal accepts either a short animal id or a slug.
func (s *HealthCardService) resolveAnimal(ref string) (*models.Animal, error) {
	animal, err := s.animalRepo.GetAnimalByID(ref)
	if err == nil {
		return animal, nil
	}
	if !errors.Is(err, repository.ErrAnimalNotFound) {
		return nil, err
	}
	return s.animalRepo.GetAnimalBySlug(ref)
}
