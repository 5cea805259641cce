package service

import (
	"errors"
	"fmt"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
	"animal-shelter-backend/pkg/utils"
)

var (
	ErrAdopterExists           = errors.New("an adopter with this name, phone and address already exists")
	ErrAdopterReferenced       = errors.New("adopter is still referenced by animals")
	ErrTemporaryHomeExists     = errors.New("a temporary home with this owner and phone already exists")
	ErrTemporaryHomeReferenced = errors.New("temporary home is still referenced by animals")
)

// AdopterService manages adopter party records.
type AdopterService struct {
	adopterRepo *repository.AdopterRepository
	animalRepo  *repository.AnimalRepository
	auditRepo   *repository.AuditRepository
}

func NewAdopterService(
	adopterRepo *repository.AdopterRepository,
	animalRepo *repository.AnimalRepository,
	auditRepo *repository.AuditRepository,
) *AdopterService {
	return &AdopterService{
		adopterRepo: adopterRepo,
		animalRepo:  animalRepo,
		auditRepo:   auditRepo,
	}
}

func (s *AdopterService) GetAllAdopters() ([]models.Adopter, error) {
	return s.adopterRepo.GetAllAdopters()
}

func (s *AdopterService) GetAdopterByID(id string) (*models.Adopter, error) {
	return s.adopterRepo.GetAdopterByID(id)
}

// CreateAdopter creates an adopter, rejecting duplicates on the
// (name, phone, address) key
func (s *AdopterService) CreateAdopter(adopter *models.Adopter, userID uint) error {
	existing, err := s.adopterRepo.FindAdopterByIdentity(adopter.Name, adopter.PhoneNumber, adopter.Address)
	if err != nil && !errors.Is(err, repository.ErrAdopterNotFound) {
		return err
	}
	if existing != nil {
		return ErrAdopterExists
	}

	adopter.ID = utils.NewShortID("a_", 16)
	if err := s.adopterRepo.CreateAdopter(adopter); err != nil {
		return fmt.Errorf("failed to create adopter: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "adopter_create",
		fmt.Sprintf("Created adopter %s (id %s)", adopter.Name, adopter.ID))
	return nil
}

func (s *AdopterService) UpdateAdopter(adopter *models.Adopter, userID uint) error {
	if _, err := s.adopterRepo.GetAdopterByID(adopter.ID); err != nil {
		return err
	}
	existing, err := s.adopterRepo.FindAdopterByIdentity(adopter.Name, adopter.PhoneNumber, adopter.Address)
	if err != nil && !errors.Is(err, repository.ErrAdopterNotFound) {
		return err
	}
	if existing != nil && existing.ID != adopter.ID {
		return ErrAdopterExists
	}

	if err := s.adopterRepo.UpdateAdopter(adopter); err != nil {
		return fmt.Errorf("failed to update adopter: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "adopter_update",
		fmt.Sprintf("Updated adopter %s", adopter.ID))
	return nil
}

// DeleteAdopter removes an adopter unless an animal still references it
func (s *AdopterService) DeleteAdopter(id string, userID uint) error {
	if _, err := s.adopterRepo.GetAdopterByID(id); err != nil {
		return err
	}
	count, err := s.animalRepo.CountAnimalsByAdopter(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAdopterReferenced
	}

	if err := s.adopterRepo.DeleteAdopter(id); err != nil {
		return fmt.Errorf("failed to delete adopter: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "adopter_delete",
		fmt.Sprintf("Deleted adopter %s", id))
	return nil
}

// TemporaryHomeService manages temporary home party records.
type TemporaryHomeService struct {
	homeRepo   *repository.TemporaryHomeRepository
	animalRepo *repository.AnimalRepository
	auditRepo  *repository.AuditRepository
}

func NewTemporaryHomeService(
	homeRepo *repository.TemporaryHomeRepository,
	animalRepo *repository.AnimalRepository,
	auditRepo *repository.AuditRepository,
) *TemporaryHomeService {
	return &TemporaryHomeService{
		homeRepo:   homeRepo,
		animalRepo: animalRepo,
		auditRepo:  auditRepo,
	}
}

func (s *TemporaryHomeService) GetAllTemporaryHomes() ([]models.TemporaryHome, error) {
	return s.homeRepo.GetAllTemporaryHomes()
}

func (s *TemporaryHomeService) GetTemporaryHomeByID(id string) (*models.TemporaryHome, error) {
	return s.homeRepo.GetTemporaryHomeByID(id)
}

// CreateTemporaryHome creates a home, rejecting duplicates on the
// (owner, phone) key
func (s *TemporaryHomeService) CreateTemporaryHome(home *models.TemporaryHome, userID uint) error {
	existing, err := s.homeRepo.FindTemporaryHomeByOwnerAndPhone(home.Owner, home.PhoneNumber)
	if err != nil && !errors.Is(err, repository.ErrTemporaryHomeNotFound) {
		return err
	}
	if existing != nil {
		return ErrTemporaryHomeExists
	}

	home.ID = utils.NewShortID("th_", 16)
	if err := s.homeRepo.CreateTemporaryHome(home); err != nil {
		return fmt.Errorf("failed to create temporary home: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "temporary_home_create",
		fmt.Sprintf("Created temporary home of %s (id %s)", home.Owner, home.ID))
	return nil
}

func (s *TemporaryHomeService) UpdateTemporaryHome(home *models.TemporaryHome, userID uint) error {
	if _, err := s.homeRepo.GetTemporaryHomeByID(home.ID); err != nil {
		return err
	}
	existing, err := s.homeRepo.FindTemporaryHomeByOwnerAndPhone(home.Owner, home.PhoneNumber)
	if err != nil && !errors.Is(err, repository.ErrTemporaryHomeNotFound) {
		return err
	}
	if existing != nil && existing.ID != home.ID {
		return ErrTemporaryHomeExists
	}

	if err := s.homeRepo.UpdateTemporaryHome(home); err != nil {
		return fmt.Errorf("failed to update temporary home: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "temporary_home_update",
		fmt.Sprintf("Updated temporary home %s", home.ID))
	return nil
}

// DeleteTemporaryHome removes a home unless an animal still references it
func (s *TemporaryHomeService) DeleteTemporaryHome(id string, userID uint) error {
	if _, err := s.homeRepo.GetTemporaryHomeByID(id); err != nil {
		return err
	}
	count, err := s.animalRepo.CountAnimalsByTemporaryHome(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTemporaryHomeReferenced
	}

	if err := s.homeRepo.DeleteTemporaryHome(id); err != nil {
		return fmt.Errorf("failed to delete temporary home: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "temporary_home_delete",
		fmt.Sprintf("Deleted temporary home %s", id))
	return nil
}
