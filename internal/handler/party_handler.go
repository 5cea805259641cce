package handler

import (
	"net/http"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdopterHandler serves the adopter registry.
type AdopterHandler struct {
	adopterService *service.AdopterService
}

func NewAdopterHandler(adopterService *service.AdopterService) *AdopterHandler {
	return &AdopterHandler{
		adopterService: adopterService,
	}
}

type AdopterRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,len=9"`
	Address     string `json:"address" binding:"required,max=255"`
}

func (h *AdopterHandler) ListAdopters(c *gin.Context) {
	adopters, err := h.adopterService.GetAllAdopters()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch adopters")
		return
	}
	utils.SuccessResponse(c, gin.H{"adopters": adopters, "count": len(adopters)})
}

func (h *AdopterHandler) GetAdopter(c *gin.Context) {
	adopter, err := h.adopterService.GetAdopterByID(c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, adopter)
}

func (h *AdopterHandler) CreateAdopter(c *gin.Context) {
	var req AdopterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	adopter := &models.Adopter{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := h.adopterService.CreateAdopter(adopter, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, adopter)
}

func (h *AdopterHandler) UpdateAdopter(c *gin.Context) {
	var req AdopterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	adopter := &models.Adopter{
		ID:          c.Param("id"),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := h.adopterService.UpdateAdopter(adopter, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, adopter)
}

func (h *AdopterHandler) DeleteAdopter(c *gin.Context) {
	if err := h.adopterService.DeleteAdopter(c.Param("id"), currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Adopter deleted successfully")
}

// TemporaryHomeHandler serves the temporary home registry.
type TemporaryHomeHandler struct {
	homeService *service.TemporaryHomeService
}

func NewTemporaryHomeHandler(homeService *service.TemporaryHomeService) *TemporaryHomeHandler {
	return &TemporaryHomeHandler{
		homeService: homeService,
	}
}

type TemporaryHomeRequest struct {
	Owner       string `json:"owner" binding:"required,min=2,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,len=9"`
	City        string `json:"city" binding:"required,max=255"`
	Street      string `json:"street" binding:"required,max=255"`
	Building    string `json:"building" binding:"required,max=10"`
	Apartment   string `json:"apartment" binding:"max=10"`
	ZipCode     string `json:"zip_code" binding:"required,max=6"`
}

func (h *TemporaryHomeHandler) ListTemporaryHomes(c *gin.Context) {
	homes, err := h.homeService.GetAllTemporaryHomes()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch temporary homes")
		return
	}
	utils.SuccessResponse(c, gin.H{"temporary_homes": homes, "count": len(homes)})
}

func (h *TemporaryHomeHandler) GetTemporaryHome(c *gin.Context) {
	home, err := h.homeService.GetTemporaryHomeByID(c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, home)
}

func (h *TemporaryHomeHandler) CreateTemporaryHome(c *gin.Context) {
	var req TemporaryHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	home := &models.TemporaryHome{
		Owner:       req.Owner,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Street:      req.Street,
		Building:    req.Building,
		Apartment:   req.Apartment,
		ZipCode:     req.ZipCode,
	}
	if err := h.homeService.CreateTemporaryHome(home, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, home)
}

func (h *TemporaryHomeHandler) UpdateTemporaryHome(c *gin.Context) {
	var req TemporaryHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	home := &models.TemporaryHome{
		ID:          c.Param("id"),
		Owner:       req.Owner,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Street:      req.Street,
		Building:    req.Building,
		Apartment:   req.Apartment,
		ZipCode:     req.ZipCode,
	}
	if err := h.homeService.UpdateTemporaryHome(home, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, home)
}

func (h *TemporaryHomeHandler) DeleteTemporaryHome(c *gin.Context) {
	if err := h.homeService.DeleteTemporaryHome(c.Param("id"), currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Temporary home deleted successfully")
}
