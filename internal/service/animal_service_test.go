package service

import (
	"testing"
	"time"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAnimalCreatesHealthCard(t *testing.T) {
	svc := newTestServices(t)

	animal, err := svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:       "Burek",
		AnimalType: models.TypeDog,
		Gender:     models.GenderMale,
		BirthDate:  models.NewDate(2019, time.June, 15),
	}, testUserID)
	require.NoError(t, err)

	assert.True(t, len(animal.ID) > 2 && animal.ID[:2] == "p_")
	assert.Equal(t, "burek", animal.Slug)
	assert.Equal(t, models.StatusNotForAdoption, animal.Status)
	assert.Equal(t, models.ResidenceShelter, animal.Residence)
	require.NotNil(t, animal.AddedByID)
	assert.Equal(t, testUserID, *animal.AddedByID)

	require.NotNil(t, animal.HealthCard)
	assert.True(t, len(animal.HealthCard.ID) > 3 && animal.HealthCard.ID[:3] == "hc_")
	assert.Equal(t, animal.ID, animal.HealthCard.AnimalID)
}

func TestRegisterAnimalRejectsFutureBirthDate(t *testing.T) {
	svc := newTestServices(t)

	future := models.Date{Time: time.Now().UTC().AddDate(0, 0, 2)}
	_, err := svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:       "Jutro",
		AnimalType: models.TypeCat,
		Gender:     models.GenderFemale,
		BirthDate:  future,
	}, testUserID)
	assert.ErrorIs(t, err, ErrBirthDateInFuture)
}

func TestRegisterAnimalRejectsFoundBeforeBirth(t *testing.T) {
	svc := newTestServices(t)

	found := models.NewDate(2019, time.January, 1)
	_, err := svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:          "Znajda",
		AnimalType:    models.TypeDog,
		Gender:        models.GenderFemale,
		BirthDate:     models.NewDate(2020, time.May, 5),
		DateWhenFound: &found,
	}, testUserID)
	assert.ErrorIs(t, err, ErrFoundBeforeBirth)
}

func TestRegisterAnimalRejectsUnknownEnums(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:       "Papuga",
		AnimalType: "PARROT",
		Gender:     models.GenderMale,
		BirthDate:  models.NewDate(2021, time.April, 1),
	}, testUserID)
	assert.ErrorIs(t, err, ErrInvalidAnimalType)

	_, err = svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:       "Mruczek",
		AnimalType: models.TypeCat,
		Gender:     models.GenderFemale,
		BirthDate:  models.NewDate(2021, time.April, 1),
		Status:     "LOST",
	}, testUserID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRegisterAnimalSlugsAreUnique(t *testing.T) {
	svc := newTestServices(t)

	first := registerTestAnimal(t, svc, "Burek")
	second := registerTestAnimal(t, svc, "Burek")
	third := registerTestAnimal(t, svc, "Burek")

	assert.Equal(t, "burek", first.Slug)
	assert.Equal(t, "burek-2", second.Slug)
	assert.Equal(t, "burek-3", third.Slug)
}

func TestRegisterAnimalFoldsPolishName(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Pimpuś Łatka")
	assert.Equal(t, "pimpus-latka", animal.Slug)
}

func TestUpdateAnimalRenameRederivesSlug(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	updated, err := svc.animals.UpdateAnimal(animal.Slug, UpdateAnimalInput{
		Name: strPtr("Reksio"),
	}, testUserID)
	require.NoError(t, err)

	assert.Equal(t, "Reksio", updated.Name)
	assert.Equal(t, "reksio", updated.Slug)

	// The old slug no longer resolves.
	_, err = svc.animals.GetAnimalBySlug("burek")
	assert.ErrorIs(t, err, repository.ErrAnimalNotFound)
}

func TestUpdateAnimalAdopterStatusConflict(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	adopter := createTestAdopter(t, svc, "Jan Kowalski", "501502503")

	_, err := svc.animals.UpdateAnimal(animal.Slug, UpdateAnimalInput{
		AdoptedByID: &adopter.ID,
		Status:      strPtr(models.StatusQuarantine),
	}, testUserID)
	assert.ErrorIs(t, err, ErrAdopterStatusConflict)
}

func TestUpdateAnimalAdopterAloneForcesAdopted(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	adopter := createTestAdopter(t, svc, "Jan Kowalski", "501502503")

	updated, err := svc.animals.UpdateAnimal(animal.Slug, UpdateAnimalInput{
		AdoptedByID: &adopter.ID,
	}, testUserID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusAdopted, updated.Status)
	require.NotNil(t, updated.AdoptedByID)
	assert.Equal(t, adopter.ID, *updated.AdoptedByID)
}

func TestAdoptAndRemoveAdopter(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	adopter := createTestAdopter(t, svc, "Anna Nowak", "601602603")

	adopted, err := svc.animals.Adopt(animal.Slug, adopter.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAdopted, adopted.Status)
	require.NotNil(t, adopted.AdoptedBy)
	assert.Equal(t, "Anna Nowak", adopted.AdoptedBy.Name)

	released, err := svc.animals.RemoveAdopter(animal.Slug, testUserID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusForAdoption, released.Status)
	assert.Nil(t, released.AdoptedByID)
	assert.Nil(t, released.AdoptedBy)
}

func TestAdoptUnknownAdopter(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	_, err := svc.animals.Adopt(animal.Slug, "a_missing", testUserID)
	assert.ErrorIs(t, err, repository.ErrAdopterNotFound)
}

func TestPublicListingShowsAdoptableOnly(t *testing.T) {
	svc := newTestServices(t)

	hidden := registerTestAnimal(t, svc, "Cichy")
	visible := registerTestAnimal(t, svc, "Widoczny")
	_, err := svc.animals.UpdateAnimal(visible.Slug, UpdateAnimalInput{
		Status: strPtr(models.StatusForAdoption),
	}, testUserID)
	require.NoError(t, err)

	// A status filter from the query string cannot widen the projection.
	animals, err := svc.animals.ListPublicAnimals(repository.AnimalFilter{
		Status: models.StatusNotForAdoption,
	})
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, "widoczny", animals[0].Slug)

	_, err = svc.animals.GetPublicAnimalBySlug(hidden.Slug)
	assert.ErrorIs(t, err, repository.ErrAnimalNotFound)

	got, err := svc.animals.GetPublicAnimalBySlug(visible.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.StatusForAdoption, got.Status)
}

func TestListAnimalsFiltersAndSorts(t *testing.T) {
	svc := newTestServices(t)

	registerTestAnimal(t, svc, "Azor")
	registerTestAnimal(t, svc, "Burek")
	registerTestAnimal(t, svc, "Czarek")

	animals, err := svc.animals.ListAnimals(repository.AnimalFilter{
		SortBy: "name",
		Order:  "desc",
	})
	require.NoError(t, err)
	require.Len(t, animals, 3)
	assert.Equal(t, "Czarek", animals[0].Name)
	assert.Equal(t, "Azor", animals[2].Name)

	animals, err = svc.animals.ListAnimals(repository.AnimalFilter{Name: "ure"})
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, "Burek", animals[0].Name)
}

func TestDeleteAnimalRemovesHealthCard(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	require.NoError(t, svc.animals.DeleteAnimal(animal.Slug, testUserID))

	_, err := svc.animals.GetAnimalBySlug(animal.Slug)
	assert.ErrorIs(t, err, repository.ErrAnimalNotFound)

	_, err = svc.healthCards.GetHealthCard(animal.ID)
	assert.ErrorIs(t, err, repository.ErrAnimalNotFound)
}

func TestRegisterAnimalWithTemporaryHome(t *testing.T) {
	svc := newTestServices(t)

	home := &models.TemporaryHome{
		Owner:       "Maria Wiśniewska",
		PhoneNumber: "701702703",
		City:        "Kraków",
		Street:      "Długa",
		Building:    "7",
		ZipCode:     "30-001",
	}
	require.NoError(t, svc.homes.CreateTemporaryHome(home, testUserID))

	animal, err := svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:            "Fafik",
		AnimalType:      models.TypeDog,
		Gender:          models.GenderMale,
		BirthDate:       models.NewDate(2022, time.February, 2),
		Residence:       models.ResidenceTemporaryHome,
		TemporaryHomeID: &home.ID,
	}, testUserID)
	require.NoError(t, err)

	require.NotNil(t, animal.TemporaryHome)
	assert.Equal(t, "Maria Wiśniewska", animal.TemporaryHome.Owner)

	// An unknown home reference is rejected on intake.
	_, err = svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:            "Bezdomny",
		AnimalType:      models.TypeDog,
		Gender:          models.GenderMale,
		BirthDate:       models.NewDate(2022, time.February, 2),
		TemporaryHomeID: strPtr("th_missing"),
	}, testUserID)
	assert.ErrorIs(t, err, repository.ErrTemporaryHomeNotFound)
}
