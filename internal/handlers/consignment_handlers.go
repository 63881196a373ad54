package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"optica_backend/internal/services"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ConsignmentHandler holds the consignment service.
type ConsignmentHandler struct {
	consignmentService services.ConsignmentService
}

// NewConsignmentHandler creates a new ConsignmentHandler.
func NewConsignmentHandler(cs services.ConsignmentService) *ConsignmentHandler {
	return &ConsignmentHandler{consignmentService: cs}
}

// CreateConsignment handles the creation of a new consignment.
func (h *ConsignmentHandler) CreateConsignment(c *gin.Context) {
	var req services.CreateConsignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateConsignment: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	consignment, err := h.consignmentService.CreateConsignment(req)
	if err != nil {
		utils.LogError(err, "CreateConsignment: Error from consignmentService.CreateConsignment")
		if errors.Is(err, services.ErrConsignmentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create consignment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, consignment)
}

// GetConsignments handles fetching all consignments.
func (h *ConsignmentHandler) GetConsignments(c *gin.Context) {
	consignments, err := h.consignmentService.GetConsignments()
	if err != nil {
		utils.LogError(err, "GetConsignments: Error from consignmentService.GetConsignments")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch consignments.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, consignments)
}

// GetConsignmentByID handles fetching a single consignment by ID.
func (h *ConsignmentHandler) GetConsignmentByID(c *gin.Context) {
	idStr := c.Param("id")
	consignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid consignment ID format.", err.Error()))
		return
	}

	consignment, err := h.consignmentService.GetConsignmentByID(consignmentID)
	if err != nil {
		utils.LogError(err, "GetConsignmentByID: Error from consignmentService.GetConsignmentByID for ID "+idStr)
		if errors.Is(err, services.ErrConsignmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Consignment not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch consignment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, consignment)
}

// UpdateConsignment handles updating a consignment.
func (h *ConsignmentHandler) UpdateConsignment(c *gin.Context) {
	idStr := c.Param("id")
	consignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid consignment ID format.", err.Error()))
		return
	}

	var req services.UpdateConsignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateConsignment: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	consignment, err := h.consignmentService.UpdateConsignment(consignmentID, req)
	if err != nil {
		utils.LogError(err, "UpdateConsignment: Error from consignmentService.UpdateConsignment for ID "+idStr)
		if errors.Is(err, services.ErrConsignmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Consignment not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrConsignmentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update consignment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, consignment)
}

// DeleteConsignment handles deleting a consignment.
func (h *ConsignmentHandler) DeleteConsignment(c *gin.Context) {
	idStr := c.Param("id")
	consignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid consignment ID format.", err.Error()))
		return
	}

	if err := h.consignmentService.DeleteConsignment(consignmentID); err != nil {
		utils.LogError(err, "DeleteConsignment: Error from consignmentService.DeleteConsignment for ID "+idStr)
		if errors.Is(err, services.ErrConsignmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Consignment not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete consignment.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
