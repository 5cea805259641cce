package service

import (
	"errors"
	"fmt"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
)

var (
	ErrAllergyExists          = errors.New("an allergy with this category and name already exists")
	ErrMedicationExists       = errors.New("a medication with this name already exists")
	ErrVaccinationExists      = errors.New("a vaccination with this name already exists")
	ErrInvalidAllergyCategory = errors.New("invalid allergy category")
)

// CatalogService manages the allergy, medication and vaccination catalogs.
type CatalogService struct {
	allergyRepo     *repository.AllergyRepository
	medicationRepo  *repository.MedicationRepository
	vaccinationRepo *repository.VaccinationRepository
	auditRepo       *repository.AuditRepository
}

func NewCatalogService(
	allergyRepo *repository.AllergyRepository,
	medicationRepo *repository.MedicationRepository,
	vaccinationRepo *repository.VaccinationRepository,
	auditRepo *repository.AuditRepository,
) *CatalogService {
	return &CatalogService{
		allergyRepo:     allergyRepo,
		medicationRepo:  medicationRepo,
		vaccinationRepo: vaccinationRepo,
		auditRepo:       auditRepo,
	}
}

func (s *CatalogService) GetAllAllergies() ([]models.Allergy, error) {
	return s.allergyRepo.GetAllAllergies()
}

func (s *CatalogService) GetAllergyByID(id uint) (*models.Allergy, error) {
	return s.allergyRepo.GetAllergyByID(id)
}

// CreateAllergy creates a catalog entry, rejecting duplicates on the
// (category, name) key
func (s *CatalogService) CreateAllergy(allergy *models.Allergy, userID uint) error {
	if !models.ValidAllergyCategory(allergy.Category) {
		return ErrInvalidAllergyCategory
	}
	existing, err := s.allergyRepo.FindAllergyByCategoryAndName(allergy.Category, allergy.Name)
	if err != nil && !errors.Is(err, repository.ErrAllergyNotFound) {
		return err
	}
	if existing != nil {
		return ErrAllergyExists
	}

	if err := s.allergyRepo.CreateAllergy(allergy); err != nil {
		return fmt.Errorf("failed to create allergy: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "allergy_create",
		fmt.Sprintf("Created allergy %s/%s", allergy.Category, allergy.Name))
	return nil
}

func (s *CatalogService) UpdateAllergy(allergy *models.Allergy, userID uint) error {
	if !models.ValidAllergyCategory(allergy.Category) {
		return ErrInvalidAllergyCategory
	}
	if _, err := s.allergyRepo.GetAllergyByID(allergy.ID); err != nil {
		return err
	}
	existing, err := s.allergyRepo.FindAllergyByCategoryAndName(allergy.Category, allergy.Name)
	if err != nil && !errors.Is(err, repository.ErrAllergyNotFound) {
		return err
	}
	if existing != nil && existing.ID != allergy.ID {
		return ErrAllergyExists
	}

	if err := s.allergyRepo.UpdateAllergy(allergy); err != nil {
		return fmt.Errorf("failed to update allergy: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "allergy_update",
		fmt.Sprintf("Updated allergy %d", allergy.ID))
	return nil
}

// DeleteAllergy removes a catalog entry; its health card association rows go
// with it, the cards themselves stay.
func (s *CatalogService) DeleteAllergy(id uint, userID uint) error {
	if _, err := s.allergyRepo.GetAllergyByID(id); err != nil {
		return err
	}
	if err := s.allergyRepo.DeleteAllergy(id); err != nil {
		return fmt.Errorf("failed to delete allergy: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "allergy_delete",
		fmt.Sprintf("Deleted allergy %d", id))
	return nil
}

func (s *CatalogService) GetAllMedications() ([]models.Medication, error) {
	return s.medicationRepo.GetAllMedications()
}

func (s *CatalogService) GetMedicationByID(id uint) (*models.Medication, error) {
	return s.medicationRepo.GetMedicationByID(id)
}

// CreateMedication creates a catalog entry, rejecting duplicate names
func (s *CatalogService) CreateMedication(medication *models.Medication, userID uint) error {
	existing, err := s.medicationRepo.FindMedicationByName(medication.Name)
	if err != nil && !errors.Is(err, repository.ErrMedicationNotFound) {
		return err
	}
	if existing != nil {
		return ErrMedicationExists
	}

	if err := s.medicationRepo.CreateMedication(medication); err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "medication_create",
		fmt.Sprintf("Created medication %s", medication.Name))
	return nil
}

func (s *CatalogService) UpdateMedication(medication *models.Medication, userID uint) error {
	if _, err := s.medicationRepo.GetMedicationByID(medication.ID); err != nil {
		return err
	}
	existing, err := s.medicationRepo.FindMedicationByName(medication.Name)
	if err != nil && !errors.Is(err, repository.ErrMedicationNotFound) {
		return err
	}
	if existing != nil && existing.ID != medication.ID {
		return ErrMedicationExists
	}

	if err := s.medicationRepo.UpdateMedication(medication); err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "medication_update",
		fmt.Sprintf("Updated medication %d", medication.ID))
	return nil
}

func (s *CatalogService) DeleteMedication(id uint, userID uint) error {
	if _, err := s.medicationRepo.GetMedicationByID(id); err != nil {
		return err
	}
	if err := s.medicationRepo.DeleteMedication(id); err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "medication_delete",
		fmt.Sprintf("Deleted medication %d", id))
	return nil
}

func (s *CatalogService) GetAllVaccinations() ([]models.Vaccination, error) {
	return s.vaccinationRepo.GetAllVaccinations()
}

func (s *CatalogService) GetVaccinationByID(id uint) (*models.Vaccination, error) {
	return s.vaccinationRepo.GetVaccinationByID(id)
}

// CreateVaccination creates a catalog entry, rejecting duplicate names
func (s *CatalogService) CreateVaccination(vaccination *models.Vaccination, userID uint) error {
	existing, err := s.vaccinationRepo.FindVaccinationByName(vaccination.Name)
	if err != nil && !errors.Is(err, repository.ErrVaccinationNotFound) {
		return err
	}
	if existing != nil {
		return ErrVaccinationExists
	}

	if err := s.vaccinationRepo.CreateVaccination(vaccination); err != nil {
		return fmt.Errorf("failed to create vaccination: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "vaccination_create",
		fmt.Sprintf("Created vaccination %s", vaccination.Name))
	return nil
}

func (s *CatalogService) UpdateVaccination(vaccination *models.Vaccination, userID uint) error {
	if _, err := s.vaccinationRepo.GetVaccinationByID(vaccination.ID); err != nil {
		return err
	}
	existing, err := s.vaccinationRepo.FindVaccinationByName(vaccination.Name)
	if err != nil && !errors.Is(err, repository.ErrVaccinationNotFound) {
		return err
	}
	if existing != nil && existing.ID != vaccination.ID {
		return ErrVaccinationExists
	}

	if err := s.vaccinationRepo.UpdateVaccination(vaccination); err != nil {
		return fmt.Errorf("failed to update vaccination: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "vaccination_update",
		fmt.Sprintf("Updated vaccination %d", vaccination.ID))
	return nil
}

func (s *CatalogService) DeleteVaccination(id uint, userID uint) error {
	if _, err := s.vaccinationRepo.GetVaccinationByID(id); err != nil {
		return err
	}
	if err := s.vaccinationRepo.DeleteVaccination(id); err != nil {
		return fmt.Errorf("failed to delete vaccination: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "vaccination_delete",
		fmt.Sprintf("Deleted vaccination %d", id))
	return nil
}
