package repository

import (
	"time"

	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormDashboardRepository is a GORM implementation of DashboardRepository
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &GormDashboardRepository{db: db}
}

// dashboardTaskRow is the flat scan target for the task/project/assignee join.
// Assignee columns come from the left-joined users table, so they are null
// whenever the task has no assignee or the assignee record no longer exists.
type dashboardTaskRow struct {
	ID            string
	Title         string
	Number        *int
	Description   *string
	Status        models.TaskStatus
	Priority      *string
	DueDate       *time.Time
	Position      *float64
	CreatedAt     time.Time
	UserID        *string
	ProjectID     string
	AssigneeName  *string
	AssigneeID    *string
	AssigneeImage *string
	ProjectName   string
	ProjectSlug   string
	ProjectIcon   *string
	WorkspaceID   string
}

// GetAllTasks resolves membership -> projects -> tasks -> labels, assembling
// the denormalized dashboard list. Each stage short-circuits to an empty
// result when its input set is empty, so a user with no workspaces costs a
// single query.
func (r *GormDashboardRepository) GetAllTasks(userID string) ([]dto.DashboardTask, error) {
	var workspaceIDs []string
	if err := r.db.Model(&models.WorkspaceMember{}).
		Where("user_id = ?", userID).
		Pluck("workspace_id", &workspaceIDs).Error; err != nil {
		return nil, err
	}
	if len(workspaceIDs) == 0 {
		return []dto.DashboardTask{}, nil
	}

	var projectIDs []string
	if err := r.db.Model(&models.Project{}).
		Where("workspace_id IN ?", workspaceIDs).
		Pluck("id", &projectIDs).Error; err != nil {
		return nil, err
	}
	if len(projectIDs) == 0 {
		return []dto.DashboardTask{}, nil
	}

	// Inner join on project: a task whose project is gone is invalid and
	// dropped. Left join on assignee: the task survives with null columns.
	var rows []dashboardTaskRow
	if err := r.db.Model(&models.Task{}).
		Select(`tasks.id, tasks.title, tasks.number, tasks.description, tasks.status,
			tasks.priority, tasks.due_date, tasks.position, tasks.created_at,
			tasks.user_id, tasks.project_id,
			users.name AS assignee_name, users.id AS assignee_id, users.image AS assignee_image,
			projects.name AS project_name, projects.slug AS project_slug,
			projects.icon AS project_icon, projects.workspace_id AS workspace_id`).
		Joins("INNER JOIN projects ON projects.id = tasks.project_id").
		Joins("LEFT JOIN users ON users.id = tasks.user_id").
		Where("tasks.project_id IN ?", projectIDs).
		Order("tasks.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	taskIDs := make([]string, len(rows))
	for i, row := range rows {
		taskIDs[i] = row.ID
	}

	labelsByTask := make(map[string][]dto.LabelDTO)
	if len(taskIDs) > 0 {
		var labels []models.Label
		if err := r.db.Where("task_id IN ?", taskIDs).
			Order("created_at ASC").
			Find(&labels).Error; err != nil {
			return nil, err
		}
		for _, label := range labels {
			labelsByTask[label.TaskID] = append(labelsByTask[label.TaskID], dto.ToLabelDTO(label))
		}
	}

	tasks := make([]dto.DashboardTask, len(rows))
	for i, row := range rows {
		labels := labelsByTask[row.ID]
		if labels == nil {
			labels = []dto.LabelDTO{}
		}
		tasks[i] = dto.DashboardTask{
			ID:            row.ID,
			Title:         row.Title,
			Number:        row.Number,
			Description:   row.Description,
			Status:        row.Status,
			Priority:      row.Priority,
			DueDate:       row.DueDate,
			Position:      row.Position,
			CreatedAt:     row.CreatedAt,
			UserID:        row.UserID,
			ProjectID:     row.ProjectID,
			AssigneeName:  row.AssigneeName,
			AssigneeID:    row.AssigneeID,
			AssigneeImage: row.AssigneeImage,
			Labels:        labels,
			Project: dto.ProjectDTO{
				ID:          row.ProjectID,
				Name:        row.ProjectName,
				Slug:        row.ProjectSlug,
				Icon:        row.ProjectIcon,
				WorkspaceID: row.WorkspaceID,
			},
		}
	}

	return tasks, nil
}
