package service

import (
	"errors"
	"fmt"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
	"animal-shelter-backend/pkg/utils"
)

var (
	ErrBirthDateInFuture     = errors.New("birth date cannot be in the future")
	ErrFoundBeforeBirth      = errors.New("date when found cannot be before the birth date")
	ErrInvalidAnimalType     = errors.New("invalid animal type")
	ErrInvalidGender         = errors.New("invalid gender")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidResidence      = errors.New("invalid residence")
	ErrAdopterStatusConflict = errors.New("if an adopter is set, the status must be ADOPTED or omitted")
)

// RegisterAnimalInput carries all descriptive fields accepted on intake.
type RegisterAnimalInput struct {
	Name                string
	AnimalType          string
	Gender              string
	Breed               string
	BirthDate           models.Date
	Description         string
	Status              string
	LocationWhereFound  string
	DateWhenFound       *models.Date
	Residence           string
	DescriptionOfHealth string
	ImageURL            string
	Size                string
	Chip                bool
	Neutered            bool
	Vaccinated          bool
	Dewormed            bool
	Character           string
	ForWho              string
	TemporaryHomeID     *string
}

// UpdateAnimalInput carries a partial update; nil fields are left unchanged.
type UpdateAnimalInput struct {
	Name                *string
	AnimalType          *string
	Gender              *string
	Breed               *string
	BirthDate           *models.Date
	Description         *string
	Status              *string
	LocationWhereFound  *string
	DateWhenFound       *models.Date
	Residence           *string
	DescriptionOfHealth *string
	ImageURL            *string
	Size                *string
	Chip                *bool
	Neutered            *bool
	Vaccinated          *bool
	Dewormed            *bool
	Character           *string
	ForWho              *string
	AdoptedByID         *string
	TemporaryHomeID     *string
}

type AnimalService struct {
	animalRepo     *repository.AnimalRepository
	healthCardRepo *repository.HealthCardRepository
	adopterRepo    *repository.AdopterRepository
	homeRepo       *repository.TemporaryHomeRepository
	auditRepo      *repository.AuditRepository
}

func NewAnimalService(
	animalRepo *repository.AnimalRepository,
	healthCardRepo *repository.HealthCardRepository,
	adopterRepo *repository.AdopterRepository,
	homeRepo *repository.TemporaryHomeRepository,
	auditRepo *repository.AuditRepository,
) *AnimalService {
	return &AnimalService{
		animalRepo:     animalRepo,
		healthCardRepo: healthCardRepo,
		adopterRepo:    adopterRepo,
		homeRepo:       homeRepo,
		auditRepo:      auditRepo,
	}
}

// RegisterAnimal validates the intake record, derives a unique slug and
// persists the animal together with its health card in one transaction.
// added_by is set explicitly from the acting user.
func (s *AnimalService) RegisterAnimal(input RegisterAnimalInput, userID uint) (*models.Animal, error) {
	if !models.ValidAnimalType(input.AnimalType) {
		return nil, ErrInvalidAnimalType
	}
	if !models.ValidGender(input.Gender) {
		return nil, ErrInvalidGender
	}
	if input.Status == "" {
		input.Status = models.StatusNotForAdoption
	}
	if !models.ValidStatus(input.Status) {
		return nil, ErrInvalidStatus
	}
	if input.Residence == "" {
		input.Residence = models.ResidenceShelter
	}
	if !models.ValidResidence(input.Residence) {
		return nil, ErrInvalidResidence
	}
	if err := validateAnimalDates(input.BirthDate, input.DateWhenFound); err != nil {
		return nil, err
	}
	if input.TemporaryHomeID != nil {
		if _, err := s.homeRepo.GetTemporaryHomeByID(*input.TemporaryHomeID); err != nil {
			return nil, err
		}
	}

	slug, err := s.uniqueSlug(input.Name, "")
	if err != nil {
		return nil, err
	}

	animal := &models.Animal{
		ID:                  utils.NewShortID("p_", 6),
		Name:                input.Name,
		Slug:                slug,
		AnimalType:          input.AnimalType,
		Gender:              input.Gender,
		Breed:               input.Breed,
		BirthDate:           input.BirthDate,
		Description:         input.Description,
		Status:              input.Status,
		LocationWhereFound:  input.LocationWhereFound,
		DateWhenFound:       input.DateWhenFound,
		Residence:           input.Residence,
		DescriptionOfHealth: input.DescriptionOfHealth,
		ImageURL:            input.ImageURL,
		Size:                input.Size,
		Chip:                input.Chip,
		Neutered:            input.Neutered,
		Vaccinated:          input.Vaccinated,
		Dewormed:            input.Dewormed,
		Character:           input.Character,
		ForWho:              input.ForWho,
		AddedByID:           &userID,
		TemporaryHomeID:     input.TemporaryHomeID,
	}
	card := &models.HealthCard{ID: utils.NewShortID("hc_", 7)}

	if err := s.animalRepo.CreateWithHealthCard(animal, card); err != nil {
		return nil, fmt.Errorf("failed to register animal: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "animal_register",
		fmt.Sprintf("Registered animal %s (%s, id %s)", animal.Name, animal.AnimalType, animal.ID))

	return s.animalRepo.GetAnimalBySlug(animal.Slug)
}

// ListAnimals retrieves animals for the admin surface
func (s *AnimalService) ListAnimals(filter repository.AnimalFilter) ([]models.Animal, error) {
	return s.animalRepo.ListAnimals(filter)
}

// GetAnimalBySlug retrieves one animal with all relations for the admin surface
func (s *AnimalService) GetAnimalBySlug(slug string) (*models.Animal, error) {
	return s.animalRepo.GetAnimalBySlug(slug)
}

// ListPublicAnimals retrieves the public projection: adoptable animals only,
// regardless of the requested status filter.
func (s *AnimalService) ListPublicAnimals(filter repository.AnimalFilter) ([]models.Animal, error) {
	filter.Status = models.StatusForAdoption
	return s.animalRepo.ListAnimals(filter)
}

// GetPublicAnimalBySlug retrieves one adoptable animal; anything not up for
// adoption is reported as not found.
func (s *AnimalService) GetPublicAnimalBySlug(slug string) (*models.Animal, error) {
	animal, err := s.animalRepo.GetAnimalBySlug(slug)
	if err != nil {
		return nil, err
	}
	if animal.Status != models.StatusForAdoption {
		return nil, repository.ErrAnimalNotFound
	}
	return animal, nil
}

// UpdateAnimal applies a partial update. Setting an adopter together with a
// status other than ADOPTED is rejected; setting an adopter alone flips the
// status to ADOPTED. A renamed animal gets its slug re-derived.
func (s *AnimalService) UpdateAnimal(slug string, input UpdateAnimalInput, userID uint) (*models.Animal, error) {
	animal, err := s.animalRepo.GetAnimalBySlug(slug)
	if err != nil {
		return nil, err
	}

	if input.AdoptedByID != nil && input.Status != nil && *input.Status != models.StatusAdopted {
		return nil, ErrAdopterStatusConflict
	}

	if input.Name != nil && *input.Name != animal.Name {
		animal.Name = *input.Name
		newSlug, err := s.uniqueSlug(animal.Name, animal.ID)
		if err != nil {
			return nil, err
		}
		animal.Slug = newSlug
	}
	if input.AnimalType != nil {
		if !models.ValidAnimalType(*input.AnimalType) {
			return nil, ErrInvalidAnimalType
		}
		animal.AnimalType = *input.AnimalType
	}
	if input.Gender != nil {
		if !models.ValidGender(*input.Gender) {
			return nil, ErrInvalidGender
		}
		animal.Gender = *input.Gender
	}
	if input.Breed != nil {
		animal.Breed = *input.Breed
	}
	if input.BirthDate != nil {
		animal.BirthDate = *input.BirthDate
	}
	if input.Description != nil {
		animal.Description = *input.Description
	}
	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		animal.Status = *input.Status
	}
	if input.LocationWhereFound != nil {
		animal.LocationWhereFound = *input.LocationWhereFound
	}
	if input.DateWhenFound != nil {
		animal.DateWhenFound = input.DateWhenFound
	}
	if input.Residence != nil {
		if !models.ValidResidence(*input.Residence) {
			return nil, ErrInvalidResidence
		}
		animal.Residence = *input.Residence
	}
	if input.DescriptionOfHealth != nil {
		animal.DescriptionOfHealth = *input.DescriptionOfHealth
	}
	if input.ImageURL != nil {
		animal.ImageURL = *input.ImageURL
	}
	if input.Size != nil {
		animal.Size = *input.Size
	}
	if input.Chip != nil {
		animal.Chip = *input.Chip
	}
	if input.Neutered != nil {
		animal.Neutered = *input.Neutered
	}
	if input.Vaccinated != nil {
		animal.Vaccinated = *input.Vaccinated
	}
	if input.Dewormed != nil {
		animal.Dewormed = *input.Dewormed
	}
	if input.Character != nil {
		animal.Character = *input.Character
	}
	if input.ForWho != nil {
		animal.ForWho = *input.ForWho
	}
	if input.TemporaryHomeID != nil {
		if _, err := s.homeRepo.GetTemporaryHomeByID(*input.TemporaryHomeID); err != nil {
			return nil, err
		}
		animal.TemporaryHomeID = input.TemporaryHomeID
	}
	if input.AdoptedByID != nil {
		if _, err := s.adopterRepo.GetAdopterByID(*input.AdoptedByID); err != nil {
			return nil, err
		}
		animal.AdoptedByID = input.AdoptedByID
		animal.Status = models.StatusAdopted
	}

	if err := validateAnimalDates(animal.BirthDate, animal.DateWhenFound); err != nil {
		return nil, err
	}

	if err := s.animalRepo.UpdateAnimal(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "animal_update",
		fmt.Sprintf("Updated animal %s (id %s)", animal.Name, animal.ID))

	return s.animalRepo.GetAnimalBySlug(animal.Slug)
}

// Adopt assigns an adopter to an animal and flips its status to ADOPTED
func (s *AnimalService) Adopt(slug string, adopterID string, userID uint) (*models.Animal, error) {
	animal, err := s.animalRepo.GetAnimalBySlug(slug)
	if err != nil {
		return nil, err
	}
	adopter, err := s.adopterRepo.GetAdopterByID(adopterID)
	if err != nil {
		return nil, err
	}

	animal.AdoptedByID = &adopter.ID
	animal.Status = models.StatusAdopted
	if err := s.animalRepo.UpdateAnimal(animal); err != nil {
		return nil, fmt.Errorf("failed to adopt animal: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "animal_adopt",
		fmt.Sprintf("Animal %s (id %s) adopted by %s", animal.Name, animal.ID, adopter.Name))

	return s.animalRepo.GetAnimalBySlug(animal.Slug)
}

// RemoveAdopter clears the adopter reference and reverts the status to
// FOR_ADOPTION
func (s *AnimalService) RemoveAdopter(slug string, userID uint) (*models.Animal, error) {
	animal, err := s.animalRepo.GetAnimalBySlug(slug)
	if err != nil {
		return nil, err
	}

	animal.AdoptedByID = nil
	animal.AdoptedBy = nil
	animal.Status = models.StatusForAdoption
	if err := s.animalRepo.UpdateAnimal(animal); err != nil {
		return nil, fmt.Errorf("failed to remove adopter: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "animal_remove_adopter",
		fmt.Sprintf("Removed adopter from animal %s (id %s)", animal.Name, animal.ID))

	return s.animalRepo.GetAnimalBySlug(animal.Slug)
}

// DeleteAnimal removes an animal and its health card
func (s *AnimalService) DeleteAnimal(slug string, userID uint) error {
	animal, err := s.animalRepo.GetAnimalBySlug(slug)
	if err != nil {
		return err
	}

	if err := s.animalRepo.DeleteAnimal(animal); err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "animal_delete",
		fmt.Sprintf("Deleted animal %s (id %s)", animal.Name, animal.ID))

	return nil
}

func validateAnimalDates(birthDate models.Date, dateWhenFound *models.Date) error {
	if birthDate.After(models.Today()) {
		return ErrBirthDateInFuture
	}
	if dateWhenFound != nil && dateWhenFound.Before(birthDate) {
		return ErrFoundBeforeBirth
	}
	return nil
}

// uniqueSlug derives a slug from the name and appends a numeric suffix until
// it is free. excludeID skips the animal being renamed.
func (s *AnimalService) uniqueSlug(name, excludeID string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "animal"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := s.animalRepo.SlugExists(slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
