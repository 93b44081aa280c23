package repository

import (
	"github.com/taskhive/task-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkspaceRepository is a GORM implementation of WorkspaceRepository
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

// ListMembershipsByUserID lists all workspaces a user is a member of
func (r *GormWorkspaceRepository) ListMembershipsByUserID(userID string) ([]models.WorkspaceMember, error) {
	var memberships []models.WorkspaceMember
	if err := r.db.Preload("Workspace").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
