package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"optica_backend/internal/services"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler holds the purchase order service.
type PurchaseOrderHandler struct {
	purchaseOrderService services.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler.
func NewPurchaseOrderHandler(ps services.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{purchaseOrderService: ps}
}

// CreatePurchaseOrder handles the creation of a new purchase order.
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req services.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePurchaseOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.purchaseOrderService.CreatePurchaseOrder(req)
	if err != nil {
		utils.LogError(err, "CreatePurchaseOrder: Error from purchaseOrderService.CreatePurchaseOrder")
		if errors.Is(err, services.ErrPurchaseOrderNumberExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Purchase order number already exists.", err.Error()))
		} else if errors.Is(err, services.ErrPurchaseOrderValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create purchase order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetPurchaseOrders handles fetching all purchase orders.
func (h *PurchaseOrderHandler) GetPurchaseOrders(c *gin.Context) {
	orders, err := h.purchaseOrderService.GetPurchaseOrders()
	if err != nil {
		utils.LogError(err, "GetPurchaseOrders: Error from purchaseOrderService.GetPurchaseOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch purchase orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetPurchaseOrderByID handles fetching a single purchase order by ID.
func (h *PurchaseOrderHandler) GetPurchaseOrderByID(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid purchase order ID format.", err.Error()))
		return
	}

	order, err := h.purchaseOrderService.GetPurchaseOrderByID(orderID)
	if err != nil {
		utils.LogError(err, "GetPurchaseOrderByID: Error from purchaseOrderService.GetPurchaseOrderByID for ID "+idStr)
		if errors.Is(err, services.ErrPurchaseOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchase order not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch purchase order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdatePurchaseOrder handles updating a purchase order.
func (h *PurchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid purchase order ID format.", err.Error()))
		return
	}

	var req services.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePurchaseOrder: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.purchaseOrderService.UpdatePurchaseOrder(orderID, req)
	if err != nil {
		utils.LogError(err, "UpdatePurchaseOrder: Error from purchaseOrderService.UpdatePurchaseOrder for ID "+idStr)
		if errors.Is(err, services.ErrPurchaseOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchase order not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrPurchaseOrderNumberExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Purchase order number already exists.", err.Error()))
		} else if errors.Is(err, services.ErrPurchaseOrderValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update purchase order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeletePurchaseOrder handles deleting a purchase order.
func (h *PurchaseOrderHandler) DeletePurchaseOrder(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid purchase order ID format.", err.Error()))
		return
	}

	if err := h.purchaseOrderService.DeletePurchaseOrder(orderID); err != nil {
		utils.LogError(err, "DeletePurchaseOrder: Error from purchaseOrderService.DeletePurchaseOrder for ID "+idStr)
		if errors.Is(err, services.ErrPurchaseOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchase order not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete purchase order.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPurchaseOrderItems handles fetching the items of one purchase order.
func (h *PurchaseOrderHandler) GetPurchaseOrderItems(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid purchase order ID format.", err.Error()))
		return
	}

	items, err := h.purchaseOrderService.GetPurchaseOrderItems(orderID)
	if err != nil {
		utils.LogError(err, "GetPurchaseOrderItems: Error from purchaseOrderService.GetPurchaseOrderItems for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch purchase order items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreatePurchaseOrderItem handles adding an item to a purchase order.
func (h *PurchaseOrderHandler) CreatePurchaseOrderItem(c *gin.Context) {
	var req services.CreatePurchaseOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePurchaseOrderItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.purchaseOrderService.CreatePurchaseOrderItem(req)
	if err != nil {
		utils.LogError(err, "CreatePurchaseOrderItem: Error from purchaseOrderService.CreatePurchaseOrderItem")
		if errors.Is(err, services.ErrPurchaseOrderItemValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create purchase order item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeletePurchaseOrderItem handles deleting a purchase order item.
func (h *PurchaseOrderHandler) DeletePurchaseOrderItem(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid purchase order item ID format.", err.Error()))
		return
	}

	if err := h.purchaseOrderService.DeletePurchaseOrderItem(itemID); err != nil {
		utils.LogError(err, "DeletePurchaseOrderItem: Error from purchaseOrderService.DeletePurchaseOrderItem for ID "+idStr)
		if errors.Is(err, services.ErrPurchaseOrderItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchase order item not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete purchase order item.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
