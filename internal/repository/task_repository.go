package repository

import (
	"time"

	"github.com/taskhive/task-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id string, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateStatus sets a task's status and optionally its due date
func (r *GormTaskRepository) UpdateStatus(id string, status models.TaskStatus, dueDate *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}
	return r.db.Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error
}
