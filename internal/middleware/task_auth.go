package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/task-dashboard-api/internal/constants"
	"github.com/taskhive/task-dashboard-api/internal/database"
	"github.com/taskhive/task-dashboard-api/internal/models"
)

// RequireTaskAccess checks if the user has access to a task.
// User must be a member of the workspace owning the task's project.
func RequireTaskAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID := c.Param("id")
		if taskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid task ID",
			})
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().
			Preload("Project").
			First(&task, "id = ?", taskID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
			c.Abort()
			return
		}

		// Membership is checked through the project's workspace.
		// Return 404 instead of 403 to avoid leaking task existence.
		var member models.WorkspaceMember
		err := database.GetDB().
			Where("workspace_id = ? AND user_id = ?", task.Project.WorkspaceID, userID).
			First(&member).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}
