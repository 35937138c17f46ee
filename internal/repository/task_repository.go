package repository

import (
	"time"

	"github.com/metaphorce/taskflow/internal/models"
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

// Save inserts or replaces a task record
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAll returns every task
func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ExistsByID reports whether a task with the given ID exists
func (r *GormTaskRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a task by ID
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// FindByCreatorID returns tasks created by the given user
func (r *GormTaskRepository) FindByCreatorID(creatorID uint64) ([]models.Task, error) {
	return r.findWhere("creator_id = ?", creatorID)
}

// FindByAssigneeID returns tasks assigned to the given user
func (r *GormTaskRepository) FindByAssigneeID(assigneeID uint64) ([]models.Task, error) {
	return r.findWhere("assignee_id = ?", assigneeID)
}

// FindByProjectID returns tasks belonging to the given project
func (r *GormTaskRepository) FindByProjectID(projectID uint64) ([]models.Task, error) {
	return r.findWhere("project_id = ?", projectID)
}

// FindByCreationDate returns tasks created at exactly the given instant
func (r *GormTaskRepository) FindByCreationDate(createdAt time.Time) ([]models.Task, error) {
	return r.findWhere("created_at = ?", createdAt)
}

// FindByPriority returns tasks with the given priority
func (r *GormTaskRepository) FindByPriority(priority models.Priority) ([]models.Task, error) {
	return r.findWhere("priority = ?", priority)
}

// FindByStatus returns tasks with the given status
func (r *GormTaskRepository) FindByStatus(status models.TaskStatus) ([]models.Task, error) {
	return r.findWhere("status = ?", status)
}

func (r *GormTaskRepository) findWhere(query string, args ...interface{}) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where(query, args...).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
