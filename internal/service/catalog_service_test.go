package service

import (
	"testing"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAllergyValidatesCategory(t *testing.T) {
	svc := newTestServices(t)

	err := svc.catalogs.CreateAllergy(&models.Allergy{Category: "SEASONAL", Name: "Pyłki"}, testUserID)
	assert.ErrorIs(t, err, ErrInvalidAllergyCategory)
}

func TestCreateAllergyRejectsDuplicateKey(t *testing.T) {
	svc := newTestServices(t)

	require.NoError(t, svc.catalogs.CreateAllergy(
		&models.Allergy{Category: models.AllergyCategoryFood, Name: "Kurczak"}, testUserID))

	err := svc.catalogs.CreateAllergy(
		&models.Allergy{Category: models.AllergyCategoryFood, Name: "Kurczak"}, testUserID)
	assert.ErrorIs(t, err, ErrAllergyExists)

	// Same name under another category is a distinct entry.
	require.NoError(t, svc.catalogs.CreateAllergy(
		&models.Allergy{Category: models.AllergyCategoryContact, Name: "Kurczak"}, testUserID))
}

func TestCreateMedicationAndVaccinationRejectDuplicateNames(t *testing.T) {
	svc := newTestServices(t)

	require.NoError(t, svc.catalogs.CreateMedication(&models.Medication{Name: "Apoquel"}, testUserID))
	err := svc.catalogs.CreateMedication(&models.Medication{Name: "Apoquel"}, testUserID)
	assert.ErrorIs(t, err, ErrMedicationExists)

	require.NoError(t, svc.catalogs.CreateVaccination(&models.Vaccination{Name: "Nobivac"}, testUserID))
	err = svc.catalogs.CreateVaccination(&models.Vaccination{Name: "Nobivac"}, testUserID)
	assert.ErrorIs(t, err, ErrVaccinationExists)
}

func TestUpdateAllergyAllowsKeepingOwnKey(t *testing.T) {
	svc := newTestServices(t)

	allergy := &models.Allergy{Category: models.AllergyCategoryFood, Name: "Kurczak"}
	require.NoError(t, svc.catalogs.CreateAllergy(allergy, testUserID))

	allergy.Description = "uczulenie na białko drobiowe"
	require.NoError(t, svc.catalogs.UpdateAllergy(allergy, testUserID))

	other := &models.Allergy{Category: models.AllergyCategoryFood, Name: "Wołowina"}
	require.NoError(t, svc.catalogs.CreateAllergy(other, testUserID))

	// Renaming onto an occupied key is rejected.
	other.Name = "Kurczak"
	assert.ErrorIs(t, svc.catalogs.UpdateAllergy(other, testUserID), ErrAllergyExists)
}

func TestDeleteAllergyCascadesToHealthCards(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")

	allergy := &models.Allergy{Category: models.AllergyCategoryFood, Name: "Kurczak"}
	require.NoError(t, svc.catalogs.CreateAllergy(allergy, testUserID))

	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{{AllergyID: allergy.ID}},
	}, testUserID)
	require.NoError(t, err)

	require.NoError(t, svc.catalogs.DeleteAllergy(allergy.ID, testUserID))

	// The association row is gone, the card itself survives.
	card, err := svc.healthCards.GetHealthCard(animal.Slug)
	require.NoError(t, err)
	assert.Empty(t, card.Allergies)

	_, err = svc.catalogs.GetAllergyByID(allergy.ID)
	assert.ErrorIs(t, err, repository.ErrAllergyNotFound)
}

func TestDeleteUnknownCatalogEntry(t *testing.T) {
	svc := newTestServices(t)

	assert.ErrorIs(t, svc.catalogs.DeleteMedication(42, testUserID), repository.ErrMedicationNotFound)
	assert.ErrorIs(t, svc.catalogs.DeleteVaccination(42, testUserID), repository.ErrVaccinationNotFound)
}

func TestListAllergiesOrdered(t *testing.T) {
	svc := newTestServices(t)

	require.NoError(t, svc.catalogs.CreateAllergy(
		&models.Allergy{Category: models.AllergyCategoryInhalation, Name: "Pyłki"}, testUserID))
	require.NoError(t, svc.catalogs.CreateAllergy(
		&models.Allergy{Category: models.AllergyCategoryFood, Name: "Kurczak"}, testUserID))

	allergies, err := svc.catalogs.GetAllAllergies()
	require.NoError(t, err)
	require.Len(t, allergies, 2)
	assert.Equal(t, models.AllergyCategoryFood, allergies[0].Category)
}
