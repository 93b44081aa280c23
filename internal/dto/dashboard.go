package dto

import (
	"time"

	"github.com/taskhive/task-dashboard-api/internal/models"
)

// LabelDTO is a label as exposed on the dashboard wire format.
type LabelDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ProjectDTO is the nested project descriptor attached to each dashboard task.
type ProjectDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Icon        *string `json:"icon"`
	WorkspaceID string  `json:"workspaceId"`
}

// DashboardTask is the denormalized view-model returned by the all-tasks
// aggregation: a task joined with assignee display fields, its project
// descriptor and its labels. Field names follow the endpoint contract.
type DashboardTask struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Number        *int              `json:"number"`
	Description   *string           `json:"description"`
	Status        models.TaskStatus `json:"status"`
	Priority      *string           `json:"priority"`
	DueDate       *time.Time        `json:"dueDate"`
	Position      *float64          `json:"position"`
	CreatedAt     time.Time         `json:"createdAt"`
	UserID        *string           `json:"userId"`
	ProjectID     string            `json:"projectId"`
	AssigneeName  *string           `json:"assigneeName"`
	AssigneeID    *string           `json:"assigneeId"`
	AssigneeImage *string           `json:"assigneeImage"`
	Labels        []LabelDTO        `json:"labels"`
	Project       ProjectDTO        `json:"project"`
}

// ToLabelDTO converts a Label model to LabelDTO.
func ToLabelDTO(label models.Label) LabelDTO {
	return LabelDTO{
		ID:    label.ID,
		Name:  label.Name,
		Color: label.Color,
	}
}
