package service

import (
	"testing"
	"time"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalogs(t *testing.T, svc *testServices) (*models.Allergy, *models.Medication, *models.Vaccination) {
	t.Helper()

	allergy := &models.Allergy{Category: models.AllergyCategoryFood, Name: "Kurczak"}
	require.NoError(t, svc.catalogs.CreateAllergy(allergy, testUserID))

	medication := &models.Medication{Name: "Apoquel"}
	require.NoError(t, svc.catalogs.CreateMedication(medication, testUserID))

	vaccination := &models.Vaccination{Name: "Wścieklizna"}
	require.NoError(t, svc.catalogs.CreateVaccination(vaccination, testUserID))

	return allergy, medication, vaccination
}

func TestUpdateHealthCardCreatesAssociations(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	allergy, medication, vaccination := seedCatalogs(t, svc)

	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID, Description: strPtr("wysypka po drobiu")},
		},
		Medications: []repository.MedicationChange{
			{MedicationID: medication.ID},
		},
		Vaccinations: []repository.VaccinationChange{
			{VaccinationID: vaccination.ID, Date: models.NewDate(2024, time.May, 10)},
		},
		Visits: []repository.VisitChange{
			{Doctor: models.DoctorPiotr, Date: models.NewDate(2024, time.May, 10), Description: "szczepienie"},
		},
	}, testUserID)
	require.NoError(t, err)

	require.Len(t, card.Allergies, 1)
	assert.Equal(t, "wysypka po drobiu", card.Allergies[0].Description)
	assert.Equal(t, "Kurczak", card.Allergies[0].Allergy.Name)
	require.Len(t, card.Medications, 1)
	require.Len(t, card.Vaccinations, 1)
	assert.True(t, card.Vaccinations[0].VaccinationDate.Equal(models.NewDate(2024, time.May, 10)))
	require.Len(t, card.Visits, 1)
	assert.Equal(t, models.DoctorPiotr, card.Visits[0].Doctor)
}

func TestUpdateHealthCardUpsertsByNaturalKey(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	allergy, _, _ := seedCatalogs(t, svc)

	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID, Description: strPtr("pierwszy opis")},
		},
	}, testUserID)
	require.NoError(t, err)

	// Resubmitting the same allergy overwrites the description in place.
	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID, Description: strPtr("nowy opis")},
		},
	}, testUserID)
	require.NoError(t, err)

	require.Len(t, card.Allergies, 1)
	assert.Equal(t, "nowy opis", card.Allergies[0].Description)
}

func TestUpdateHealthCardDuplicateEntryLastWins(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	allergy, _, _ := seedCatalogs(t, svc)

	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID, Description: strPtr("pierwszy")},
			{AllergyID: allergy.ID, Description: strPtr("drugi")},
		},
	}, testUserID)
	require.NoError(t, err)

	require.Len(t, card.Allergies, 1)
	assert.Equal(t, "drugi", card.Allergies[0].Description)
}

func TestUpdateHealthCardNilDescriptionKeepsStored(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	allergy, _, _ := seedCatalogs(t, svc)

	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID, Description: strPtr("zachowany opis")},
		},
	}, testUserID)
	require.NoError(t, err)

	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID},
		},
	}, testUserID)
	require.NoError(t, err)

	require.Len(t, card.Allergies, 1)
	assert.Equal(t, "zachowany opis", card.Allergies[0].Description)
}

func TestUpdateHealthCardVaccinationRecursByDate(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	_, _, vaccination := seedCatalogs(t, svc)

	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Vaccinations: []repository.VaccinationChange{
			{VaccinationID: vaccination.ID, Date: models.NewDate(2023, time.May, 10)},
			{VaccinationID: vaccination.ID, Date: models.NewDate(2024, time.May, 10)},
		},
	}, testUserID)
	require.NoError(t, err)

	assert.Len(t, card.Vaccinations, 2)
}

func TestUpdateHealthCardUnknownReferenceRollsBack(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	allergy, _, _ := seedCatalogs(t, svc)

	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{
			{AllergyID: allergy.ID, Description: strPtr("powinno zniknąć")},
		},
		Medications: []repository.MedicationChange{
			{MedicationID: 9999},
		},
	}, testUserID)
	assert.ErrorIs(t, err, repository.ErrUnknownMedication)

	// The valid allergy entry from the failed batch must not persist.
	card, err := svc.healthCards.GetHealthCard(animal.Slug)
	require.NoError(t, err)
	assert.Empty(t, card.Allergies)
}

func TestUpdateHealthCardVisitResubmissionIsNoOp(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")

	visit := repository.VisitChange{
		Doctor:      models.DoctorJoanna,
		Date:        models.NewDate(2024, time.November, 3),
		Description: "kontrola po zabiegu",
	}
	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Visits: []repository.VisitChange{visit},
	}, testUserID)
	require.NoError(t, err)

	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Visits: []repository.VisitChange{visit},
	}, testUserID)
	require.NoError(t, err)
	assert.Len(t, card.Visits, 1)

	// A changed description is a new log entry, not an update.
	visit.Description = "kontrola po zabiegu, rana zagojona"
	card, err = svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Visits: []repository.VisitChange{visit},
	}, testUserID)
	require.NoError(t, err)
	assert.Len(t, card.Visits, 2)
}

func TestUpdateHealthCardOmittedCollectionsUntouched(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	allergy, medication, _ := seedCatalogs(t, svc)

	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Allergies: []repository.AllergyChange{{AllergyID: allergy.ID}},
	}, testUserID)
	require.NoError(t, err)

	card, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Medications: []repository.MedicationChange{{MedicationID: medication.ID}},
	}, testUserID)
	require.NoError(t, err)

	assert.Len(t, card.Allergies, 1)
	assert.Len(t, card.Medications, 1)
}

func TestUpdateHealthCardValidation(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")
	_, _, vaccination := seedCatalogs(t, svc)

	future := models.Date{Time: time.Now().UTC().AddDate(0, 0, 3)}

	_, err := svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Vaccinations: []repository.VaccinationChange{
			{VaccinationID: vaccination.ID, Date: future},
		},
	}, testUserID)
	assert.ErrorIs(t, err, ErrVaccinationDateInFuture)

	_, err = svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Visits: []repository.VisitChange{
			{Doctor: models.DoctorPiotr, Date: future, Description: "planowana"},
		},
	}, testUserID)
	assert.ErrorIs(t, err, ErrVisitDateInFuture)

	_, err = svc.healthCards.UpdateHealthCard(animal.Slug, repository.HealthCardChanges{
		Visits: []repository.VisitChange{
			{Doctor: "HOUSE", Date: models.NewDate(2024, time.January, 1), Description: "konsultacja"},
		},
	}, testUserID)
	assert.ErrorIs(t, err, ErrInvalidDoctor)
}

func TestGetHealthCardByIDOrSlug(t *testing.T) {
	svc := newTestServices(t)
	animal := registerTestAnimal(t, svc, "Burek")

	byID, err := svc.healthCards.GetHealthCard(animal.ID)
	require.NoError(t, err)

	bySlug, err := svc.healthCards.GetHealthCard(animal.Slug)
	require.NoError(t, err)

	assert.Equal(t, byID.ID, bySlug.ID)

	_, err = svc.healthCards.GetHealthCard("nie-ma-takiego")
	assert.ErrorIs(t, err, repository.ErrAnimalNotFound)
}
