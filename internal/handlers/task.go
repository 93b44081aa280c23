package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/task-dashboard-api/internal/constants"
	apierrors "github.com/taskhive/task-dashboard-api/internal/errors"
	"github.com/taskhive/task-dashboard-api/internal/models"
	"github.com/taskhive/task-dashboard-api/internal/services"
)

// TaskHandler coordinates task mutation endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// UpdateStatus applies a status change to a task.
// Access is already checked by the RequireTaskAccess middleware.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	taskInterface, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	task, ok := taskInterface.(models.Task)
	if !ok {
		apierrors.InternalError(c, "Invalid task data")
		return
	}

	type UpdateStatusRequest struct {
		Status  models.TaskStatus `json:"status" binding:"required"`
		DueDate *time.Time        `json:"dueDate"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.taskService.UpdateStatus(services.UpdateStatusInput{
		TaskID:  task.ID,
		Status:  req.Status,
		DueDate: req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, "Invalid task status")
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		default:
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
