package dto

import (
	"time"

	"github.com/metaphorce/taskflow/internal/models"
)

// UserDTO represents a user in API responses. The credential hash is never
// included.
type UserDTO struct {
	ID    uint64      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	LeadID      uint64    `json:"lead_id"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CreatorID   uint64            `json:"creator_id"`
	AssigneeID  uint64            `json:"assignee_id"`
	ProjectID   uint64            `json:"project_id"`
	Priority    models.Priority   `json:"priority"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// TimeLogDTO represents a time log in API responses
type TimeLogDTO struct {
	ID              uint64    `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	UserID          uint64    `json:"user_id"`
	TaskID          uint64    `json:"task_id"`
	SessionDuration int64     `json:"session_duration"`
}

// TotalDurationDTO reports the summed session duration for a user/task pair
type TotalDurationDTO struct {
	UserID        uint64 `json:"user_id"`
	TaskID        uint64 `json:"task_id"`
	TotalDuration int64  `json:"total_duration"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// ToUserDTOs converts a slice of User models to UserDTOs
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   project.StartDate,
		LeadID:      project.LeadID,
	}
}

// ToProjectDTOs converts a slice of Project models to ProjectDTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatorID:   task.CreatorID,
		AssigneeID:  task.AssigneeID,
		ProjectID:   task.ProjectID,
		Priority:    task.Priority,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models to TaskDTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToTimeLogDTO converts a TimeLog model to TimeLogDTO
func ToTimeLogDTO(timeLog models.TimeLog) TimeLogDTO {
	return TimeLogDTO{
		ID:              timeLog.ID,
		StartTime:       timeLog.StartTime,
		EndTime:         timeLog.EndTime,
		UserID:          timeLog.UserID,
		TaskID:          timeLog.TaskID,
		SessionDuration: timeLog.SessionDuration,
	}
}

// ToTimeLogDTOs converts a slice of TimeLog models to TimeLogDTOs
func ToTimeLogDTOs(timeLogs []models.TimeLog) []TimeLogDTO {
	dtos := make([]TimeLogDTO, len(timeLogs))
	for i, timeLog := range timeLogs {
		dtos[i] = ToTimeLogDTO(timeLog)
	}
	return dtos
}
