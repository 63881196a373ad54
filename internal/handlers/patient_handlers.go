package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"optica_backend/internal/services"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler holds the patient service.
type PatientHandler struct {
	patientService services.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(ps services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: ps}
}

// CreatePatient handles the creation of a new patient.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req services.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePatient: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	patient, err := h.patientService.CreatePatient(req)
	if err != nil {
		utils.LogError(err, "CreatePatient: Error from patientService.CreatePatient")
		if errors.Is(err, services.ErrPatientValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create patient.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetPatients handles fetching all patients.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.patientService.GetPatients()
	if err != nil {
		utils.LogError(err, "GetPatients: Error from patientService.GetPatients")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch patients.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatientByID handles fetching a single patient by ID.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	idStr := c.Param("id")
	patientID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid patient ID format.", err.Error()))
		return
	}

	patient, err := h.patientService.GetPatientByID(patientID)
	if err != nil {
		utils.LogError(err, "GetPatientByID: Error from patientService.GetPatientByID for ID "+idStr)
		if errors.Is(err, services.ErrPatientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Patient not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch patient.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatient handles updating a patient.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	idStr := c.Param("id")
	patientID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid patient ID format.", err.Error()))
		return
	}

	var req services.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePatient: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	patient, err := h.patientService.UpdatePatient(patientID, req)
	if err != nil {
		utils.LogError(err, "UpdatePatient: Error from patientService.UpdatePatient for ID "+idStr)
		if errors.Is(err, services.ErrPatientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Patient not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrPatientValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update patient.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, patient)
}

// DeletePatient handles deleting a patient.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	idStr := c.Param("id")
	patientID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid patient ID format.", err.Error()))
		return
	}

	if err := h.patientService.DeletePatient(patientID); err != nil {
		utils.LogError(err, "DeletePatient: Error from patientService.DeletePatient for ID "+idStr)
		if errors.Is(err, services.ErrPatientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Patient not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete patient.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
