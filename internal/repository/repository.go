package repository

import (
	"time"

	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/models"
)

// DashboardRepository defines the read-side aggregation for the all-tasks view
type DashboardRepository interface {
	// GetAllTasks returns every task in every workspace the user is a member
	// of, denormalized with assignee, project and label data, ordered by
	// creation time ascending.
	GetAllTasks(userID string) ([]dto.DashboardTask, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// FindByID finds a task by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Task, error)

	// UpdateStatus sets a task's status and optionally its due date
	UpdateStatus(id string, status models.TaskStatus, dueDate *time.Time) error
}

// WorkspaceRepository defines the interface for workspace membership access
type WorkspaceRepository interface {
	// ListMembershipsByUserID lists all workspaces a user is a member of
	ListMembershipsByUserID(userID string) ([]models.WorkspaceMember, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithPersonalWorkspace creates a user, their personal workspace,
	// and the corresponding membership within a single transaction.
	CreateWithPersonalWorkspace(user *models.User, workspace *models.Workspace, member *models.WorkspaceMember) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}
