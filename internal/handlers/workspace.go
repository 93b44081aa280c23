package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhive/task-dashboard-api/internal/dto"
	apierrors "github.com/taskhive/task-dashboard-api/internal/errors"
	"github.com/taskhive/task-dashboard-api/internal/middleware"
	"github.com/taskhive/task-dashboard-api/internal/repository"
)

// WorkspaceHandler coordinates workspace listing for the dashboard shell.
type WorkspaceHandler struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewWorkspaceHandler creates a new WorkspaceHandler.
func NewWorkspaceHandler(workspaceRepo repository.WorkspaceRepository) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceRepo: workspaceRepo,
	}
}

// ListWorkspaces returns every workspace the current user is a member of.
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	memberships, err := h.workspaceRepo.ListMembershipsByUserID(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch workspaces")
		return
	}

	workspaces := make([]dto.WorkspaceDTO, len(memberships))
	for i, member := range memberships {
		workspaces[i] = dto.ToWorkspaceDTO(member)
	}

	c.JSON(http.StatusOK, workspaces)
}
