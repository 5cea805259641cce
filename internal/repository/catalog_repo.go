package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAllergyNotFound     = errors.New("allergy not found")
	ErrMedicationNotFound  = errors.New("medication not found")
	ErrVaccinationNotFound = errors.New("vaccination not found")
)

// AllergyRepository manages the allergy catalog.
type AllergyRepository struct {
	db *gorm.DB
}

func NewAllergyRepo(db *gorm.DB) *AllergyRepository {
	return &AllergyRepository{db: db}
}

func (r *AllergyRepository) GetAllAllergies() ([]models.Allergy, error) {
	var allergies []models.Allergy
	err := r.db.Order("category ASC, name ASC").Find(&allergies).Error
	return allergies, err
}

func (r *AllergyRepository) GetAllergyByID(id uint) (*models.Allergy, error) {
	var allergy models.Allergy
	err := r.db.First(&allergy, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllergyNotFound
		}
		return nil, err
	}
	return &allergy, nil
}

// FindAllergyByCategoryAndName looks up the (category, name) uniqueness key
func (r *AllergyRepository) FindAllergyByCategoryAndName(category, name string) (*models.Allergy, error) {
	var allergy models.Allergy
	err := r.db.Where("category = ? AND name = ?", category, name).First(&allergy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllergyNotFound
		}
		return nil, err
	}
	return &allergy, nil
}

func (r *AllergyRepository) CreateAllergy(allergy *models.Allergy) error {
	return r.db.Create(allergy).Error
}

func (r *AllergyRepository) UpdateAllergy(allergy *models.Allergy) error {
	return r.db.Save(allergy).Error
}

// DeleteAllergy removes a catalog entry and its association rows; health
// cards themselves are untouched.
func (r *AllergyRepository) DeleteAllergy(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("allergy_id = ?", id).Delete(&models.HealthCardAllergy{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Allergy{}, id).Error
	})
}

// MedicationRepository manages the medication catalog.
type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepo(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) GetAllMedications() ([]models.Medication, error) {
	var medications []models.Medication
	err := r.db.Order("name ASC").Find(&medications).Error
	return medications, err
}

func (r *MedicationRepository) GetMedicationByID(id uint) (*models.Medication, error) {
	var medication models.Medication
	err := r.db.First(&medication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return &medication, nil
}

func (r *MedicationRepository) FindMedicationByName(name string) (*models.Medication, error) {
	var medication models.Medication
	err := r.db.Where("name = ?", name).First(&medication).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return &medication, nil
}

func (r *MedicationRepository) CreateMedication(medication *models.Medication) error {
	return r.db.Create(medication).Error
}

func (r *MedicationRepository) UpdateMedication(medication *models.Medication) error {
	return r.db.Save(medication).Error
}

// DeleteMedication removes a catalog entry and its association rows.
func (r *MedicationRepository) DeleteMedication(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medication_id = ?", id).Delete(&models.HealthCardMedication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Medication{}, id).Error
	})
}

// VaccinationRepository manages the vaccination catalog.
type VaccinationRepository struct {
	db *gorm.DB
}

func NewVaccinationRepo(db *gorm.DB) *VaccinationRepository {
	return &VaccinationRepository{db: db}
}

func (r *VaccinationRepository) GetAllVaccinations() ([]models.Vaccination, error) {
	var vaccinations []models.Vaccination
	err := r.db.Order("name ASC").Find(&vaccinations).Error
	return vaccinations, err
}

func (r *VaccinationRepository) GetVaccinationByID(id uint) (*models.Vaccination, error) {
	var vaccination models.Vaccination
	err := r.db.First(&vaccination, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVaccinationNotFound
		}
		return nil, err
	}
	return &vaccination, nil
}

func (r *VaccinationRepository) FindVaccinationByName(name string) (*models.Vaccination, error) {
	var vaccination models.Vaccination
	err := r.db.Where("name = ?", name).First(&vaccination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVaccinationNotFound
		}
		return nil, err
	}
	return &vaccination, nil
}

func (r *VaccinationRepository) CreateVaccination(vaccination *models.Vaccination) error {
	return r.db.Create(vaccination).Error
}

func (r *VaccinationRepository) UpdateVaccination(vaccination *models.Vaccination) error {
	return r.db.Save(vaccination).Error
}

// DeleteVaccination removes a catalog entry and its association rows.
func (r *VaccinationRepository) DeleteVaccination(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vaccination_id = ?", id).Delete(&models.HealthCardVaccination{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vaccination{}, id).Error
	})
}
