package view

import (
	"sort"

	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// unassignedName stands in for a missing assignee when ordering by assignee.
const unassignedName = "Unassigned"

// statusRank defines a total order over all known statuses. planned and
// archived never survive the fixed exclusion, but the comparator stays
// defined for them: planned groups before to-do, archived after done.
// Unrecognized statuses sort before everything.
func statusRank(s models.TaskStatus) int {
	switch s {
	case models.TaskStatusPlanned:
		return -1
	case models.TaskStatusTodo:
		return 0
	case models.TaskStatusInProgress:
		return 1
	case models.TaskStatusInReview:
		return 2
	case models.TaskStatusDone:
		return 3
	case models.TaskStatusArchived:
		return 4
	default:
		return -2
	}
}

func (s State) includes(task dto.DashboardTask) bool {
	// Archived and planned tasks are hidden from the dashboard regardless of
	// the user's filter state.
	if task.Status == models.TaskStatusArchived || task.Status == models.TaskStatusPlanned {
		return false
	}
	if s.Filters.Project != "" && task.Project.ID != s.Filters.Project {
		return false
	}
	if s.Filters.Status != "" && string(task.Status) != s.Filters.Status {
		return false
	}
	if s.Filters.Assignee != "" && (task.AssigneeID == nil || *task.AssigneeID != s.Filters.Assignee) {
		return false
	}
	return true
}

// Apply filters and sorts the task list according to the state, returning a
// new slice. The input is never mutated.
func Apply(tasks []dto.DashboardTask, s State) []dto.DashboardTask {
	filtered := make([]dto.DashboardTask, 0, len(tasks))
	for _, task := range tasks {
		if s.includes(task) {
			filtered = append(filtered, task)
		}
	}

	collator := collate.New(language.Und)
	sort.SliceStable(filtered, func(i, j int) bool {
		return s.less(collator, filtered[i], filtered[j])
	})

	return filtered
}

func (s State) less(collator *collate.Collator, a, b dto.DashboardTask) bool {
	var comparison int

	switch s.SortField {
	case SortTitle:
		comparison = collator.CompareString(a.Title, b.Title)
	case SortProject:
		comparison = collator.CompareString(a.Project.Name, b.Project.Name)
	case SortStatus:
		comparison = statusRank(a.Status) - statusRank(b.Status)
	case SortAssignee:
		comparison = collator.CompareString(assigneeSortName(a), assigneeSortName(b))
	case SortDueDate:
		// Tasks without a due date always sort after tasks that have one,
		// independent of the sort direction.
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case a.DueDate.Equal(*b.DueDate):
			comparison = 0
		case a.DueDate.Before(*b.DueDate):
			comparison = -1
		default:
			comparison = 1
		}
	}

	if s.SortDirection == SortDesc {
		comparison = -comparison
	}
	return comparison < 0
}

func assigneeSortName(task dto.DashboardTask) string {
	if task.AssigneeName == nil {
		return unassignedName
	}
	return *task.AssigneeName
}
