package models

import "time"

// TimeLog is one tracked work session for a user on a task.
// SessionDuration is supplied by the caller in seconds and persisted as
// given; EndTime >= StartTime is not enforced.
type TimeLog struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	UserID          uint64    `gorm:"not null;index" json:"user_id"`
	TaskID          uint64    `gorm:"not null;index" json:"task_id"`
	SessionDuration int64     `gorm:"not null" json:"session_duration"`
}
