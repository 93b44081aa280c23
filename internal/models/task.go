package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusInReview   TaskStatus = "in-review"
	TaskStatusDone       TaskStatus = "done"
	// Hidden from the dashboard view but still stored and queryable.
	TaskStatusArchived TaskStatus = "archived"
	TaskStatusPlanned  TaskStatus = "planned"
)

// ValidStatus reports whether s is one of the six known task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusInReview,
		TaskStatusDone, TaskStatusArchived, TaskStatusPlanned:
		return true
	}
	return false
}

type Task struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Number      *int           `json:"number"`
	Description *string        `gorm:"type:text" json:"description"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'to-do'" json:"status"`
	Priority    *string        `gorm:"type:varchar(20)" json:"priority"`
	DueDate     *time.Time     `json:"due_date"`
	Position    *float64       `json:"position"`
	UserID      *string        `gorm:"type:varchar(36);index" json:"user_id"`
	ProjectID   string         `gorm:"type:varchar(36);not null;index" json:"project_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project  Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee *User   `gorm:"foreignKey:UserID" json:"assignee,omitempty"`
	Labels   []Label `gorm:"foreignKey:TaskID" json:"labels,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
