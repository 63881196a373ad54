package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"optica_backend/internal/services"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PrescriptionHandler holds the prescription service.
type PrescriptionHandler struct {
	prescriptionService services.PrescriptionService
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(ps services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: ps}
}

// CreatePrescription handles the creation of a new prescription.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var req services.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePrescription: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	prescription, err := h.prescriptionService.CreatePrescription(req)
	if err != nil {
		utils.LogError(err, "CreatePrescription: Error from prescriptionService.CreatePrescription")
		if errors.Is(err, services.ErrPrescriptionValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create prescription.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, prescription)
}

// GetPrescriptions handles fetching all prescriptions.
func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	prescriptions, err := h.prescriptionService.GetPrescriptions()
	if err != nil {
		utils.LogError(err, "GetPrescriptions: Error from prescriptionService.GetPrescriptions")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch prescriptions.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// GetPrescriptionByID handles fetching a single prescription by ID.
func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	idStr := c.Param("id")
	prescriptionID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid prescription ID format.", err.Error()))
		return
	}

	prescription, err := h.prescriptionService.GetPrescriptionByID(prescriptionID)
	if err != nil {
		utils.LogError(err, "GetPrescriptionByID: Error from prescriptionService.GetPrescriptionByID for ID "+idStr)
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Prescription not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch prescription.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, prescription)
}

// UpdatePrescription handles updating a prescription.
func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	idStr := c.Param("id")
	prescriptionID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid prescription ID format.", err.Error()))
		return
	}

	var req services.UpdatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePrescription: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	prescription, err := h.prescriptionService.UpdatePrescription(prescriptionID, req)
	if err != nil {
		utils.LogError(err, "UpdatePrescription: Error from prescriptionService.UpdatePrescription for ID "+idStr)
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Prescription not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrPrescriptionValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update prescription.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, prescription)
}

// DeletePrescription handles deleting a prescription.
func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	idStr := c.Param("id")
	prescriptionID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid prescription ID format.", err.Error()))
		return
	}

	if err := h.prescriptionService.DeletePrescription(prescriptionID); err != nil {
		utils.LogError(err, "DeletePrescription: Error from prescriptionService.DeletePrescription for ID "+idStr)
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Prescription not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete prescription.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
