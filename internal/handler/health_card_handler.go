package handler

import (
	"net/http"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthCardHandler struct {
	healthCardService *service.HealthCardService
}

func NewHealthCardHandler(healthCardService *service.HealthCardService) *HealthCardHandler {
	return &HealthCardHandler{
		healthCardService: healthCardService,
	}
}

// HealthCardAllergyEntry is one submitted allergy association.
type HealthCardAllergyEntry struct {
	AllergyID   uint    `json:"allergy" binding:"required"`
	Description *string `json:"description"`
}

// HealthCardMedicationEntry is one submitted medication association.
type HealthCardMedicationEntry struct {
	MedicationID uint    `json:"medication" binding:"required"`
	Description  *string `json:"description"`
}

// HealthCardVaccinationEntry is one submitted vaccination association.
type HealthCardVaccinationEntry struct {
	VaccinationID   uint        `json:"vaccination" binding:"required"`
	VaccinationDate models.Date `json:"vaccination_date" binding:"required"`
	Description     *string     `json:"description"`
}

// HealthCardVisitEntry is one submitted veterinary visit.
type HealthCardVisitEntry struct {
	Doctor      string      `json:"doctor" binding:"required"`
	Date        models.Date `json:"date" binding:"required"`
	Description string      `json:"description" binding:"required"`
}

// UpdateHealthCardRequest carries the nested collections to reconcile.
// Collections that are omitted are simply not touched.
type UpdateHealthCardRequest struct {
	Allergies    []HealthCardAllergyEntry     `json:"allergies"`
	Medications  []HealthCardMedicationEntry  `json:"medications"`
	Vaccinations []HealthCardVaccinationEntry `json:"vaccinations"`
	Visits       []HealthCardVisitEntry       `json:"veterinary_visits"`
}

func (req UpdateHealthCardRequest) toChanges() repository.HealthCardChanges {
	changes := repository.HealthCardChanges{}
	for _, e := range req.Allergies {
		changes.Allergies = append(changes.Allergies, repository.AllergyChange{
			AllergyID:   e.AllergyID,
			Description: e.Description,
		})
	}
	for _, e := range req.Medications {
		changes.Medications = append(changes.Medications, repository.MedicationChange{
			MedicationID: e.MedicationID,
			Description:  e.Description,
		})
	}
	for _, e := range req.Vaccinations {
		changes.Vaccinations = append(changes.Vaccinations, repository.VaccinationChange{
			VaccinationID: e.VaccinationID,
			Date:          e.VaccinationDate,
			Description:   e.Description,
		})
	}
	for _, e := range req.Visits {
		changes.Visits = append(changes.Visits, repository.VisitChange{
			Doctor:      e.Doctor,
			Date:        e.Date,
			Description: e.Description,
		})
	}
	return changes
}

// GetHealthCard retrieves the full nested card of one animal, addressed by
// animal id or slug
func (h *HealthCardHandler) GetHealthCard(c *gin.Context) {
	card, err := h.healthCardService.GetHealthCard(c.Param("animal_id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, card)
}

// UpdateHealthCard reconciles the submitted nested collections against the
// stored card
func (h *HealthCardHandler) UpdateHealthCard(c *gin.Context) {
	var req UpdateHealthCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	card, err := h.healthCardService.UpdateHealthCard(c.Param("animal_id"), req.toChanges(), currentUserID(c))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, card)
}
