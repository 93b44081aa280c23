package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Label struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Color     string    `gorm:"type:varchar(20);not null" json:"color"`
	TaskID    string    `gorm:"type:varchar(36);not null;index" json:"task_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
