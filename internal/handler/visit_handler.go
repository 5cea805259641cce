package handler

import (
	"net/http"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// VisitHandler serves the standalone veterinary visit log.
type VisitHandler struct {
	visitService *service.VisitService
}

func NewVisitHandler(visitService *service.VisitService) *VisitHandler {
	return &VisitHandler{
		visitService: visitService,
	}
}

type CreateVisitRequest struct {
	HealthCardID string      `json:"health_card_id" binding:"required"`
	Doctor       string      `json:"doctor" binding:"required"`
	Date         models.Date `json:"date" binding:"required"`
	Description  string      `json:"description" binding:"required"`
}

type UpdateVisitRequest struct {
	Doctor      string      `json:"doctor" binding:"required"`
	Date        models.Date `json:"date" binding:"required"`
	Description string      `json:"description" binding:"required"`
}

// ListVisits retrieves visits, optionally filtered by health card
func (h *VisitHandler) ListVisits(c *gin.Context) {
	visits, err := h.visitService.ListVisits(c.Query("health_card_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch visits")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"visits": visits,
		"count":  len(visits),
	})
}

func (h *VisitHandler) GetVisit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	visit, err := h.visitService.GetVisitByID(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, visit)
}

func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	visit := &models.VeterinaryVisit{
		HealthCardID: req.HealthCardID,
		Doctor:       req.Doctor,
		Date:         req.Date,
		Description:  req.Description,
	}
	if err := h.visitService.CreateVisit(visit, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, visit)
}

func (h *VisitHandler) UpdateVisit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	visit := &models.VeterinaryVisit{
		ID:          id,
		Doctor:      req.Doctor,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := h.visitService.UpdateVisit(visit, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, visit)
}

func (h *VisitHandler) DeleteVisit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.visitService.DeleteVisit(id, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Visit deleted successfully")
}
