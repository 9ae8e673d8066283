package model

import (
	"time"

	"task-list.com/task-list/internal/constants"
)

type Task struct {
	ID          int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string             `gorm:"not null" json:"title"`
	IsCompleted bool               `gorm:"not null" json:"is_completed"`
	Priority    constants.Priority `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
	Position    int                `gorm:"not null;index" json:"position"`
	CreatedAt   time.Time          `gorm:"not null" json:"created_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskPatch holds the fields of a partial update. A nil field is left untouched.
type TaskPatch struct {
	Title       *string
	IsCompleted *bool
	Priority    *constants.Priority
	DueDate     *DatePatch
}

// DatePatch sets the due date to Value, or clears it when Value is nil.
type DatePatch struct {
	Value *time.Time
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.IsCompleted == nil && p.Priority == nil && p.DueDate == nil
}
