package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskhive/task-dashboard-api/internal/errors"
	"github.com/taskhive/task-dashboard-api/internal/middleware"
	"github.com/taskhive/task-dashboard-api/internal/services"
)

// DashboardHandler coordinates the cross-workspace dashboard endpoints.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetAllTasks returns every task across all workspaces the current user is a
// member of, as a bare JSON array. Archived and planned tasks are included;
// hiding them is the view's job.
func (h *DashboardHandler) GetAllTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.dashboardService.GetAllTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}
