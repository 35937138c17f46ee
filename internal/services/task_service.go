package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask persists a new task. Creator, assignee, and project references
// are stored without existence checks.
func (s *TaskService) CreateTask(task *models.Task) (*models.Task, error) {
	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// GetTasks returns every task.
func (s *TaskService) GetTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTasksByCreator returns tasks created by the given user.
func (s *TaskService) GetTasksByCreator(creatorID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByCreatorID(creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by creator: %w", err)
	}
	return tasks, nil
}

// GetTasksByAssignee returns tasks assigned to the given user.
func (s *TaskService) GetTasksByAssignee(assigneeID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByAssigneeID(assigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by assignee: %w", err)
	}
	return tasks, nil
}

// GetTasksByProject returns tasks belonging to the given project.
func (s *TaskService) GetTasksByProject(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by project: %w", err)
	}
	return tasks, nil
}

// GetTasksByCreationDate returns tasks created at exactly the given instant.
func (s *TaskService) GetTasksByCreationDate(createdAt time.Time) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByCreationDate(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by creation date: %w", err)
	}
	return tasks, nil
}

// GetTasksByPriority returns tasks with the given priority.
func (s *TaskService) GetTasksByPriority(priority models.Priority) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByPriority(priority)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by priority: %w", err)
	}
	return tasks, nil
}

// GetTasksByStatus returns tasks with the given status.
func (s *TaskService) GetTasksByStatus(status models.TaskStatus) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status: %w", err)
	}
	return tasks, nil
}

// UpdateTask replaces the stored task wholesale, forcing its ID. Status may
// move from any value to any other.
func (s *TaskService) UpdateTask(id uint64, task *models.Task) (*models.Task, error) {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.ID = id
	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task by ID. Time logs referencing the task remain.
func (s *TaskService) DeleteTask(id uint64) error {
	exists, err := s.taskRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
