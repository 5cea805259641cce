package service

import (
	"testing"
	"time"

	"animal-shelter-backend/internal/database"
	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testUserID is the acting staff member in tests. Audit rows reference it
// but no user record is needed for the services under test.
const testUserID uint = 1

type testServices struct {
	db          *gorm.DB
	animals     *AnimalService
	healthCards *HealthCardService
	catalogs    *CatalogService
	visits      *VisitService
	adopters    *AdopterService
	homes       *TemporaryHomeService
	blog        *BlogService
	auth        *AuthService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	animalRepo := repository.NewAnimalRepo(db)
	healthCardRepo := repository.NewHealthCardRepo(db)
	adopterRepo := repository.NewAdopterRepo(db)
	homeRepo := repository.NewTemporaryHomeRepo(db)
	allergyRepo := repository.NewAllergyRepo(db)
	medicationRepo := repository.NewMedicationRepo(db)
	vaccinationRepo := repository.NewVaccinationRepo(db)
	visitRepo := repository.NewVisitRepo(db)
	blogRepo := repository.NewBlogRepo(db)

	return &testServices{
		db:          db,
		animals:     NewAnimalService(animalRepo, healthCardRepo, adopterRepo, homeRepo, auditRepo),
		healthCards: NewHealthCardService(healthCardRepo, animalRepo, auditRepo),
		catalogs:    NewCatalogService(allergyRepo, medicationRepo, vaccinationRepo, auditRepo),
		visits:      NewVisitService(visitRepo, healthCardRepo, auditRepo),
		adopters:    NewAdopterService(adopterRepo, animalRepo, auditRepo),
		homes:       NewTemporaryHomeService(homeRepo, animalRepo, auditRepo),
		blog:        NewBlogService(blogRepo, auditRepo),
		auth:        NewAuthService(userRepo, auditRepo),
	}
}

func strPtr(s string) *string {
	return &s
}

// registerTestAnimal creates an animal with sensible defaults. The name
// drives the slug, everything else can be overridden afterwards.
func registerTestAnimal(t *testing.T, svc *testServices, name string) *models.Animal {
	t.Helper()
	animal, err := svc.animals.RegisterAnimal(RegisterAnimalInput{
		Name:       name,
		AnimalType: models.TypeDog,
		Gender:     models.GenderMale,
		BirthDate:  models.NewDate(2020, time.March, 1),
	}, testUserID)
	require.NoError(t, err)
	return animal
}

// createTestAdopter persists an adopter through the service so it gets an id.
func createTestAdopter(t *testing.T, svc *testServices, name, phone string) *models.Adopter {
	t.Helper()
	adopter := &models.Adopter{
		Name:        name,
		PhoneNumber: phone,
		Address:     "ul. Polna 1, Warszawa",
	}
	require.NoError(t, svc.adopters.CreateAdopter(adopter, testUserID))
	return adopter
}
