package dto

import "github.com/taskhive/task-dashboard-api/internal/models"

// WorkspaceDTO represents a workspace in API responses
type WorkspaceDTO struct {
	ID   string               `json:"id"`
	Name string               `json:"name"`
	Role models.WorkspaceRole `json:"role"`
}

// ToWorkspaceDTO converts a membership (with preloaded workspace) to WorkspaceDTO
func ToWorkspaceDTO(member models.WorkspaceMember) WorkspaceDTO {
	return WorkspaceDTO{
		ID:   member.WorkspaceID,
		Name: member.Workspace.Name,
		Role: member.Role,
	}
}
