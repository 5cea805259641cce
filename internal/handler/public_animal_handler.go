package handler

import (
	"net/http"
	"time"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PublicAnimalHandler serves the unauthenticated read surface of the animal
// registry.
type PublicAnimalHandler struct {
	animalService *service.AnimalService
}

func NewPublicAnimalHandler(animalService *service.AnimalService) *PublicAnimalHandler {
	return &PublicAnimalHandler{
		animalService: animalService,
	}
}

// PublicAnimalResponse is the projection exposed to the public website.
// Internal relations (registering staff member, adopter identity, temporary
// home) are deliberately absent.
type PublicAnimalResponse struct {
	Name                string       `json:"name"`
	Slug                string       `json:"slug"`
	AnimalType          string       `json:"animal_type"`
	Gender              string       `json:"gender"`
	Breed               string       `json:"breed,omitempty"`
	BirthDate           models.Date  `json:"birth_date"`
	Description         string       `json:"description,omitempty"`
	Status              string       `json:"status"`
	DescriptionOfHealth string       `json:"description_of_health,omitempty"`
	Residence           string       `json:"residence"`
	Image               string       `json:"image,omitempty"`
	Size                string       `json:"size,omitempty"`
	Chip                bool         `json:"chip"`
	Neutered            bool         `json:"neutered"`
	Vaccinated          bool         `json:"vaccinated"`
	Dewormed            bool         `json:"dewormed"`
	Character           string       `json:"character,omitempty"`
	ForWho              string       `json:"for_who,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

func toPublicAnimalResponse(animal *models.Animal) PublicAnimalResponse {
	return PublicAnimalResponse{
		Name:                animal.Name,
		Slug:                animal.Slug,
		AnimalType:          animal.AnimalType,
		Gender:              animal.Gender,
		Breed:               animal.Breed,
		BirthDate:           animal.BirthDate,
		Description:         animal.Description,
		Status:              animal.Status,
		DescriptionOfHealth: animal.DescriptionOfHealth,
		Residence:           animal.Residence,
		Image:               animal.ImageURL,
		Size:                animal.Size,
		Chip:                animal.Chip,
		Neutered:            animal.Neutered,
		Vaccinated:          animal.Vaccinated,
		Dewormed:            animal.Dewormed,
		Character:           animal.Character,
		ForWho:              animal.ForWho,
		CreatedAt:           animal.CreatedAt,
	}
}

// ListAnimals retrieves adoptable animals only, whatever the query says
func (h *PublicAnimalHandler) ListAnimals(c *gin.Context) {
	animals, err := h.animalService.ListPublicAnimals(animalFilterFromQuery(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch animals")
		return
	}

	responses := make([]PublicAnimalResponse, 0, len(animals))
	for i := range animals {
		responses = append(responses, toPublicAnimalResponse(&animals[i]))
	}

	utils.SuccessResponse(c, gin.H{
		"animals": responses,
		"count":   len(responses),
	})
}

// GetAnimal retrieves one adoptable animal by slug
func (h *PublicAnimalHandler) GetAnimal(c *gin.Context) {
	animal, err := h.animalService.GetPublicAnimalBySlug(c.Param("slug"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, toPublicAnimalResponse(animal))
}
