// Package view implements the client-side derivation engine for the all-tasks
// dashboard: filter facets, a fixed-exclusion filter pipeline, multi-key
// sorting and the status-change intent. Everything here is a pure
// recomputation over (task list, state) so it is safe to re-run on every
// refresh.
package view

import (
	"time"

	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/models"
)

type SortField string

const (
	SortTitle    SortField = "title"
	SortProject  SortField = "project"
	SortStatus   SortField = "status"
	SortAssignee SortField = "assignee"
	SortDueDate  SortField = "dueDate"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Filters holds one optional constraint per dimension. The empty string means
// "no constraint"; dimensions combine with AND.
type Filters struct {
	Project  string
	Status   string
	Assignee string
}

// State is the user-controlled filter/sort state of the task list.
type State struct {
	SortField     SortField
	SortDirection SortDirection
	Filters       Filters
}

// NewState returns the default view state: due date ascending, no filters.
func NewState() State {
	return State{
		SortField:     SortDueDate,
		SortDirection: SortAsc,
	}
}

// ToggleProjectFilter sets the project filter, or clears it when the value is
// already selected.
func (s *State) ToggleProjectFilter(projectID string) {
	s.Filters.Project = toggle(s.Filters.Project, projectID)
}

// ToggleStatusFilter sets the status filter, or clears it when the value is
// already selected.
func (s *State) ToggleStatusFilter(status string) {
	s.Filters.Status = toggle(s.Filters.Status, status)
}

// ToggleAssigneeFilter sets the assignee filter, or clears it when the value
// is already selected.
func (s *State) ToggleAssigneeFilter(assigneeID string) {
	s.Filters.Assignee = toggle(s.Filters.Assignee, assigneeID)
}

func toggle(current, value string) string {
	if current == value {
		return ""
	}
	return value
}

// ClearFilters resets every filter dimension.
func (s *State) ClearFilters() {
	s.Filters = Filters{}
}

// HasActiveFilters reports whether any filter dimension is set.
func (s *State) HasActiveFilters() bool {
	return s.Filters != Filters{}
}

// SortBy selects a sort key. Re-selecting the active key flips the direction;
// a new key resets to ascending.
func (s *State) SortBy(field SortField) {
	if s.SortField == field {
		if s.SortDirection == SortAsc {
			s.SortDirection = SortDesc
		} else {
			s.SortDirection = SortAsc
		}
		return
	}
	s.SortField = field
	s.SortDirection = SortAsc
}

// ProjectFacet is a distinct project offered in the filter menu.
type ProjectFacet struct {
	ID   string
	Name string
}

// AssigneeFacet is a distinct assignee offered in the filter menu.
type AssigneeFacet struct {
	ID    string
	Name  string
	Image *string
}

// Facets scans the full task list once and returns the deduplicated project
// and assignee sets in first-seen order. Unassigned tasks contribute nothing
// to the assignee facet.
func Facets(tasks []dto.DashboardTask) ([]ProjectFacet, []AssigneeFacet) {
	projects := make([]ProjectFacet, 0)
	assignees := make([]AssigneeFacet, 0)
	seenProjects := make(map[string]bool)
	seenAssignees := make(map[string]bool)

	for _, task := range tasks {
		if !seenProjects[task.Project.ID] {
			seenProjects[task.Project.ID] = true
			projects = append(projects, ProjectFacet{
				ID:   task.Project.ID,
				Name: task.Project.Name,
			})
		}
		if task.AssigneeID != nil && task.AssigneeName != nil && !seenAssignees[*task.AssigneeID] {
			seenAssignees[*task.AssigneeID] = true
			assignees = append(assignees, AssigneeFacet{
				ID:    *task.AssigneeID,
				Name:  *task.AssigneeName,
				Image: task.AssigneeImage,
			})
		}
	}

	return projects, assignees
}

// Overdue reports whether a task should be highlighted as overdue: a due date
// strictly before now and a status other than done. Presentation only.
func Overdue(task dto.DashboardTask, now time.Time) bool {
	return task.DueDate != nil &&
		task.DueDate.Before(now) &&
		task.Status != models.TaskStatusDone
}

// StatusChangeIntent is the mutation request emitted when the user picks a new
// status for a row. The view only constructs it; applying the mutation is the
// task subsystem's job.
type StatusChangeIntent struct {
	TaskID  string            `json:"taskId"`
	Status  models.TaskStatus `json:"status"`
	DueDate *time.Time        `json:"dueDate,omitempty"`
}

// StatusChange builds the intent for a task with its status replaced, carrying
// the task's due date when present.
func StatusChange(task dto.DashboardTask, status models.TaskStatus) StatusChangeIntent {
	return StatusChangeIntent{
		TaskID:  task.ID,
		Status:  status,
		DueDate: task.DueDate,
	}
}
