package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskhive/task-dashboard-api/internal/models"
	"github.com/taskhive/task-dashboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService handles task mutations dispatched from the dashboard
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// UpdateStatusInput represents input for a status change
type UpdateStatusInput struct {
	TaskID  string
	Status  models.TaskStatus
	DueDate *time.Time
}

// UpdateStatus applies a status change to a task
func (s *TaskService) UpdateStatus(input UpdateStatusInput) (*models.Task, error) {
	if !models.ValidStatus(input.Status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.taskRepo.FindByID(input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.UpdateStatus(input.TaskID, input.Status, input.DueDate); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return s.taskRepo.FindByID(input.TaskID, "Project")
}
