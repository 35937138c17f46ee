package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "ASSIGNED"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task carries creator, assignee, and project as weak id references.
// Any status may be replaced by any other; there is no transition order.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	CreatorID   uint64     `gorm:"not null;index" json:"creator_id"`
	AssigneeID  uint64     `gorm:"not null;index" json:"assignee_id"`
	ProjectID   uint64     `gorm:"not null;index" json:"project_id"`
	Priority    Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	Status      TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
