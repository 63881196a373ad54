package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"optica_backend/internal/services"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler holds the appointment service.
type AppointmentHandler struct {
	appointmentService services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(as services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: as}
}

// CreateAppointment handles the creation of a new appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req services.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateAppointment: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(req)
	if err != nil {
		utils.LogError(err, "CreateAppointment: Error from appointmentService.CreateAppointment")
		if errors.Is(err, services.ErrAppointmentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create appointment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments handles fetching all appointments.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.appointmentService.GetAppointments()
	if err != nil {
		utils.LogError(err, "GetAppointments: Error from appointmentService.GetAppointments")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch appointments.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentByID handles fetching a single appointment by ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	idStr := c.Param("id")
	appointmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid appointment ID format.", err.Error()))
		return
	}

	appointment, err := h.appointmentService.GetAppointmentByID(appointmentID)
	if err != nil {
		utils.LogError(err, "GetAppointmentByID: Error from appointmentService.GetAppointmentByID for ID "+idStr)
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Appointment not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch appointment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment handles updating an appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	idStr := c.Param("id")
	appointmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid appointment ID format.", err.Error()))
		return
	}

	var req services.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateAppointment: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(appointmentID, req)
	if err != nil {
		utils.LogError(err, "UpdateAppointment: Error from appointmentService.UpdateAppointment for ID "+idStr)
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Appointment not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrAppointmentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update appointment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment handles deleting an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	idStr := c.Param("id")
	appointmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid appointment ID format.", err.Error()))
		return
	}

	if err := h.appointmentService.DeleteAppointment(appointmentID); err != nil {
		utils.LogError(err, "DeleteAppointment: Error from appointmentService.DeleteAppointment for ID "+idStr)
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Appointment not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete appointment.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
