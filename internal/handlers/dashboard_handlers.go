package handlers

import (
	"net/http"

	"optica_backend/internal/repositories"
	"optica_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard figures. The metrics
// are plain reads, so the handler goes straight to the repository.
type DashboardHandler struct {
	dashboardRepo repositories.DashboardRepository
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(repo repositories.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{dashboardRepo: repo}
}

// GetSummary handles fetching the dashboard summary.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardRepo.Summary()
	if err != nil {
		utils.LogError(err, "GetSummary: Error from dashboardRepo.Summary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}
