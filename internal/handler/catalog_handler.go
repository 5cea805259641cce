package handler

import (
	"net/http"
	"strconv"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the allergy, medication and vaccination catalogs.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// AllergyRequest is the write payload for the allergy catalog.
type AllergyRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// NamedCatalogRequest is the write payload for medications and vaccinations.
type NamedCatalogRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *CatalogHandler) ListAllergies(c *gin.Context) {
	allergies, err := h.catalogService.GetAllAllergies()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch allergies")
		return
	}
	utils.SuccessResponse(c, gin.H{"allergies": allergies, "count": len(allergies)})
}

func (h *CatalogHandler) GetAllergy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	allergy, err := h.catalogService.GetAllergyByID(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, allergy)
}

func (h *CatalogHandler) CreateAllergy(c *gin.Context) {
	var req AllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	allergy := &models.Allergy{
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.catalogService.CreateAllergy(allergy, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, allergy)
}

func (h *CatalogHandler) UpdateAllergy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req AllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	allergy := &models.Allergy{
		ID:          id,
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.catalogService.UpdateAllergy(allergy, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, allergy)
}

func (h *CatalogHandler) DeleteAllergy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteAllergy(id, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Allergy deleted successfully")
}

func (h *CatalogHandler) ListMedications(c *gin.Context) {
	medications, err := h.catalogService.GetAllMedications()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medications")
		return
	}
	utils.SuccessResponse(c, gin.H{"medications": medications, "count": len(medications)})
}

func (h *CatalogHandler) GetMedication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	medication, err := h.catalogService.GetMedicationByID(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, medication)
}

func (h *CatalogHandler) CreateMedication(c *gin.Context) {
	var req NamedCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	medication := &models.Medication{Name: req.Name, Description: req.Description}
	if err := h.catalogService.CreateMedication(medication, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, medication)
}

func (h *CatalogHandler) UpdateMedication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req NamedCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	medication := &models.Medication{ID: id, Name: req.Name, Description: req.Description}
	if err := h.catalogService.UpdateMedication(medication, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, medication)
}

func (h *CatalogHandler) DeleteMedication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteMedication(id, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Medication deleted successfully")
}

func (h *CatalogHandler) ListVaccinations(c *gin.Context) {
	vaccinations, err := h.catalogService.GetAllVaccinations()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch vaccinations")
		return
	}
	utils.SuccessResponse(c, gin.H{"vaccinations": vaccinations, "count": len(vaccinations)})
}

func (h *CatalogHandler) GetVaccination(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	vaccination, err := h.catalogService.GetVaccinationByID(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, vaccination)
}

func (h *CatalogHandler) CreateVaccination(c *gin.Context) {
	var req NamedCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vaccination := &models.Vaccination{Name: req.Name, Description: req.Description}
	if err := h.catalogService.CreateVaccination(vaccination, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, vaccination)
}

func (h *CatalogHandler) UpdateVaccination(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req NamedCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vaccination := &models.Vaccination{ID: id, Name: req.Name, Description: req.Description}
	if err := h.catalogService.UpdateVaccination(vaccination, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, vaccination)
}

func (h *CatalogHandler) DeleteVaccination(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteVaccination(id, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Vaccination deleted successfully")
}
