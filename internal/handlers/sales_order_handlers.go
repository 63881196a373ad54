package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"optica_backend/internal/services"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SalesOrderHandler holds the sales order service.
type SalesOrderHandler struct {
	salesOrderService services.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler.
func NewSalesOrderHandler(ss services.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{salesOrderService: ss}
}

// CreateSalesOrder handles the creation of a new sales order.
func (h *SalesOrderHandler) CreateSalesOrder(c *gin.Context) {
	var req services.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSalesOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.salesOrderService.CreateSalesOrder(req)
	if err != nil {
		utils.LogError(err, "CreateSalesOrder: Error from salesOrderService.CreateSalesOrder")
		if errors.Is(err, services.ErrSalesOrderNumberExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Sales order number already exists.", err.Error()))
		} else if errors.Is(err, services.ErrSalesOrderValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create sales order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetSalesOrders handles fetching all sales orders.
func (h *SalesOrderHandler) GetSalesOrders(c *gin.Context) {
	orders, err := h.salesOrderService.GetSalesOrders()
	if err != nil {
		utils.LogError(err, "GetSalesOrders: Error from salesOrderService.GetSalesOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sales orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetSalesOrderByID handles fetching a single sales order by ID.
func (h *SalesOrderHandler) GetSalesOrderByID(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sales order ID format.", err.Error()))
		return
	}

	order, err := h.salesOrderService.GetSalesOrderByID(orderID)
	if err != nil {
		utils.LogError(err, "GetSalesOrderByID: Error from salesOrderService.GetSalesOrderByID for ID "+idStr)
		if errors.Is(err, services.ErrSalesOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sales order not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sales order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateSalesOrder handles updating a sales order.
func (h *SalesOrderHandler) UpdateSalesOrder(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sales order ID format.", err.Error()))
		return
	}

	var req services.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateSalesOrder: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.salesOrderService.UpdateSalesOrder(orderID, req)
	if err != nil {
		utils.LogError(err, "UpdateSalesOrder: Error from salesOrderService.UpdateSalesOrder for ID "+idStr)
		if errors.Is(err, services.ErrSalesOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sales order not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrSalesOrderNumberExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Sales order number already exists.", err.Error()))
		} else if errors.Is(err, services.ErrSalesOrderValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update sales order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteSalesOrder handles deleting a sales order.
func (h *SalesOrderHandler) DeleteSalesOrder(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sales order ID format.", err.Error()))
		return
	}

	if err := h.salesOrderService.DeleteSalesOrder(orderID); err != nil {
		utils.LogError(err, "DeleteSalesOrder: Error from salesOrderService.DeleteSalesOrder for ID "+idStr)
		if errors.Is(err, services.ErrSalesOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sales order not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete sales order.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSalesOrderItems handles fetching the items of one sales order.
func (h *SalesOrderHandler) GetSalesOrderItems(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sales order ID format.", err.Error()))
		return
	}

	items, err := h.salesOrderService.GetSalesOrderItems(orderID)
	if err != nil {
		utils.LogError(err, "GetSalesOrderItems: Error from salesOrderService.GetSalesOrderItems for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sales order items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateSalesOrderItem handles adding an item to a sales order.
func (h *SalesOrderHandler) CreateSalesOrderItem(c *gin.Context) {
	var req services.CreateSalesOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSalesOrderItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.salesOrderService.CreateSalesOrderItem(req)
	if err != nil {
		utils.LogError(err, "CreateSalesOrderItem: Error from salesOrderService.CreateSalesOrderItem")
		if errors.Is(err, services.ErrSalesOrderItemValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create sales order item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteSalesOrderItem handles deleting a sales order item.
func (h *SalesOrderHandler) DeleteSalesOrderItem(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid sales order item ID format.", err.Error()))
		return
	}

	if err := h.salesOrderService.DeleteSalesOrderItem(itemID); err != nil {
		utils.LogError(err, "DeleteSalesOrderItem: Error from salesOrderService.DeleteSalesOrderItem for ID "+idStr)
		if errors.Is(err, services.ErrSalesOrderItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Sales order item not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete sales order item.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
