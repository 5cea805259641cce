package handler

import (
	"net/http"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnimalHandler struct {
	animalService *service.AnimalService
}

func NewAnimalHandler(animalService *service.AnimalService) *AnimalHandler {
	return &AnimalHandler{
		animalService: animalService,
	}
}

// RegisterAnimalRequest is the intake payload for a new animal.
type RegisterAnimalRequest struct {
	Name                string       `json:"name" binding:"required,min=2,max=255"`
	AnimalType          string       `json:"animal_type" binding:"required"`
	Gender              string       `json:"gender" binding:"required"`
	Breed               string       `json:"breed"`
	BirthDate           models.Date  `json:"birth_date" binding:"required"`
	Description         string       `json:"description"`
	Status              string       `json:"status"`
	LocationWhereFound  string       `json:"location_where_found"`
	DateWhenFound       *models.Date `json:"date_when_found"`
	Residence           string       `json:"residence"`
	DescriptionOfHealth string       `json:"description_of_health"`
	Image               string       `json:"image"`
	Size                string       `json:"size"`
	Chip                bool         `json:"chip"`
	Neutered            bool         `json:"neutered"`
	Vaccinated          bool         `json:"vaccinated"`
	Dewormed            bool         `json:"dewormed"`
	Character           string       `json:"character"`
	ForWho              string       `json:"for_who"`
	TemporaryHomeID     *string      `json:"temporary_home_id"`
}

// UpdateAnimalRequest is a partial update; absent fields stay unchanged.
type UpdateAnimalRequest struct {
	Name                *string      `json:"name" binding:"omitempty,min=2,max=255"`
	AnimalType          *string      `json:"animal_type"`
	Gender              *string      `json:"gender"`
	Breed               *string      `json:"breed"`
	BirthDate           *models.Date `json:"birth_date"`
	Description         *string      `json:"description"`
	Status              *string      `json:"status"`
	LocationWhereFound  *string      `json:"location_where_found"`
	DateWhenFound       *models.Date `json:"date_when_found"`
	Residence           *string      `json:"residence"`
	DescriptionOfHealth *string      `json:"description_of_health"`
	Image               *string      `json:"image"`
	Size                *string      `json:"size"`
	Chip                *bool        `json:"chip"`
	Neutered            *bool        `json:"neutered"`
	Vaccinated          *bool        `json:"vaccinated"`
	Dewormed            *bool        `json:"dewormed"`
	Character           *string      `json:"character"`
	ForWho              *string      `json:"for_who"`
	AdoptedByID         *string      `json:"adopted_by_id"`
	TemporaryHomeID     *string      `json:"temporary_home_id"`
}

// AdoptRequest couples an animal with an adopter.
type AdoptRequest struct {
	AdopterID string `json:"adopter_id" binding:"required"`
}

func animalFilterFromQuery(c *gin.Context) repository.AnimalFilter {
	return repository.AnimalFilter{
		Name:   c.Query("name"),
		Slug:   c.Query("slug"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Breed:  c.Query("breed"),
		SortBy: c.Query("sort"),
		Order:  c.Query("order"),
	}
}

// ListAnimals retrieves animals with optional filters and ordering
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	animals, err := h.animalService.ListAnimals(animalFilterFromQuery(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch animals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"animals": animals,
		"count":   len(animals),
	})
}

// GetAnimal retrieves one animal by slug with all relations
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	animal, err := h.animalService.GetAnimalBySlug(c.Param("slug"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, animal)
}

// RegisterAnimal creates a new animal; its health card is created with it
func (h *AnimalHandler) RegisterAnimal(c *gin.Context) {
	var req RegisterAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	animal, err := h.animalService.RegisterAnimal(service.RegisterAnimalInput{
		Name:                req.Name,
		AnimalType:          req.AnimalType,
		Gender:              req.Gender,
		Breed:               req.Breed,
		BirthDate:           req.BirthDate,
		Description:         req.Description,
		Status:              req.Status,
		LocationWhereFound:  req.LocationWhereFound,
		DateWhenFound:       req.DateWhenFound,
		Residence:           req.Residence,
		DescriptionOfHealth: req.DescriptionOfHealth,
		ImageURL:            req.Image,
		Size:                req.Size,
		Chip:                req.Chip,
		Neutered:            req.Neutered,
		Vaccinated:          req.Vaccinated,
		Dewormed:            req.Dewormed,
		Character:           req.Character,
		ForWho:              req.ForWho,
		TemporaryHomeID:     req.TemporaryHomeID,
	}, currentUserID(c))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, animal)
}

// UpdateAnimal applies a partial update to one animal
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	var req UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	animal, err := h.animalService.UpdateAnimal(c.Param("slug"), service.UpdateAnimalInput{
		Name:                req.Name,
		AnimalType:          req.AnimalType,
		Gender:              req.Gender,
		Breed:               req.Breed,
		BirthDate:           req.BirthDate,
		Description:         req.Description,
		Status:              req.Status,
		LocationWhereFound:  req.LocationWhereFound,
		DateWhenFound:       req.DateWhenFound,
		Residence:           req.Residence,
		DescriptionOfHealth: req.DescriptionOfHealth,
		ImageURL:            req.Image,
		Size:                req.Size,
		Chip:                req.Chip,
		Neutered:            req.Neutered,
		Vaccinated:          req.Vaccinated,
		Dewormed:            req.Dewormed,
		Character:           req.Character,
		ForWho:              req.ForWho,
		AdoptedByID:         req.AdoptedByID,
		TemporaryHomeID:     req.TemporaryHomeID,
	}, currentUserID(c))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, animal)
}

// Adopt assigns an adopter and flips the status to ADOPTED
func (h *AnimalHandler) Adopt(c *gin.Context) {
	var req AdoptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	animal, err := h.animalService.Adopt(c.Param("slug"), req.AdopterID, currentUserID(c))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, animal)
}

// RemoveAdopter clears the adopter and reverts the status to FOR_ADOPTION
func (h *AnimalHandler) RemoveAdopter(c *gin.Context) {
	animal, err := h.animalService.RemoveAdopter(c.Param("slug"), currentUserID(c))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, animal)
}

// DeleteAnimal removes an animal together with its health card
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	if err := h.animalService.DeleteAnimal(c.Param("slug"), currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Animal deleted successfully")
}
