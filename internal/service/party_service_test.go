package service

import (
	"testing"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdopterAssignsIDAndRejectsDuplicate(t *testing.T) {
	svc := newTestServices(t)

	adopter := createTestAdopter(t, svc, "Jan Kowalski", "501502503")
	assert.True(t, len(adopter.ID) > 2 && adopter.ID[:2] == "a_")

	dup := &models.Adopter{
		Name:        "Jan Kowalski",
		PhoneNumber: "501502503",
		Address:     "ul. Polna 1, Warszawa",
	}
	assert.ErrorIs(t, svc.adopters.CreateAdopter(dup, testUserID), ErrAdopterExists)

	// A different phone number is a different person.
	other := &models.Adopter{
		Name:        "Jan Kowalski",
		PhoneNumber: "501502504",
		Address:     "ul. Polna 1, Warszawa",
	}
	require.NoError(t, svc.adopters.CreateAdopter(other, testUserID))
}

func TestUpdateAdopterRejectsTakenIdentity(t *testing.T) {
	svc := newTestServices(t)

	first := createTestAdopter(t, svc, "Jan Kowalski", "501502503")
	second := createTestAdopter(t, svc, "Anna Nowak", "601602603")

	second.Name = first.Name
	second.PhoneNumber = first.PhoneNumber
	assert.ErrorIs(t, svc.adopters.UpdateAdopter(second, testUserID), ErrAdopterExists)

	// Updating without touching the identity key is fine.
	first.Address = "ul. Polna 1, Warszawa"
	require.NoError(t, svc.adopters.UpdateAdopter(first, testUserID))
}

func TestDeleteAdopterRestrictedWhileReferenced(t *testing.T) {
	svc := newTestServices(t)

	animal := registerTestAnimal(t, svc, "Burek")
	adopter := createTestAdopter(t, svc, "Jan Kowalski", "501502503")

	_, err := svc.animals.Adopt(animal.Slug, adopter.ID, testUserID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.adopters.DeleteAdopter(adopter.ID, testUserID), ErrAdopterReferenced)

	_, err = svc.animals.RemoveAdopter(animal.Slug, testUserID)
	require.NoError(t, err)
	require.NoError(t, svc.adopters.DeleteAdopter(adopter.ID, testUserID))

	_, err = svc.adopters.GetAdopterByID(adopter.ID)
	assert.ErrorIs(t, err, repository.ErrAdopterNotFound)
}

func TestCreateTemporaryHomeRejectsDuplicateOwnerPhone(t *testing.T) {
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
	assert.True(t, len(home.ID) > 3 && home.ID[:3] == "th_")

	dup := &models.TemporaryHome{
		Owner:       "Maria Wiśniewska",
		PhoneNumber: "701702703",
		City:        "Warszawa",
		Street:      "Krótka",
		Building:    "2",
		ZipCode:     "00-001",
	}
	assert.ErrorIs(t, svc.homes.CreateTemporaryHome(dup, testUserID), ErrTemporaryHomeExists)
}

func TestDeleteTemporaryHomeRestrictedWhileReferenced(t *testing.T) {
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

	animal := registerTestAnimal(t, svc, "Fafik")
	_, err := svc.animals.UpdateAnimal(animal.Slug, UpdateAnimalInput{
		TemporaryHomeID: &home.ID,
		Residence:       strPtr(models.ResidenceTemporaryHome),
	}, testUserID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.homes.DeleteTemporaryHome(home.ID, testUserID), ErrTemporaryHomeReferenced)
}
