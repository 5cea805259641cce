package handler

import (
	"errors"
	"net/http"

	"animal-shelter-backend/internal/repository"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	repository.ErrAnimalNotFound,
	repository.ErrHealthCardNotFound,
	repository.ErrAdopterNotFound,
	repository.ErrTemporaryHomeNotFound,
	repository.ErrAllergyNotFound,
	repository.ErrMedicationNotFound,
	repository.ErrVaccinationNotFound,
	repository.ErrVisitNotFound,
	repository.ErrCategoryNotFound,
	repository.ErrPostNotFound,
}

var validationErrors = []error{
	repository.ErrUnknownAllergy,
	repository.ErrUnknownMedication,
	repository.ErrUnknownVaccination,
	service.ErrBirthDateInFuture,
	service.ErrFoundBeforeBirth,
	service.ErrInvalidAnimalType,
	service.ErrInvalidGender,
	service.ErrInvalidStatus,
	service.ErrInvalidResidence,
	service.ErrAdopterStatusConflict,
	service.ErrVisitDateInFuture,
	service.ErrVaccinationDateInFuture,
	service.ErrInvalidDoctor,
	service.ErrInvalidAllergyCategory,
	service.ErrAllergyExists,
	service.ErrMedicationExists,
	service.ErrVaccinationExists,
	service.ErrAdopterExists,
	service.ErrAdopterReferenced,
	service.ErrTemporaryHomeExists,
	service.ErrTemporaryHomeReferenced,
	service.ErrCategoryReferenced,
}

// serviceErrorResponse maps service and repository sentinel errors onto HTTP
// status codes: unknown references and constraint violations are the
// caller's fault, missing records are 404, anything else is a server error.
func serviceErrorResponse(c *gin.Context, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			utils.ErrorResponse(c, http.StatusNotFound, target.Error())
			return
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			utils.ErrorResponse(c, http.StatusBadRequest, target.Error())
			return
		}
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

// currentUserID returns the authenticated user's id injected by the auth
// middleware.
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}
