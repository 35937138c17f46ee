package repository

import (
	"time"

	"github.com/metaphorce/taskflow/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Save inserts or replaces a project record
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll returns every project
func (r *GormProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ExistsByID reports whether a project with the given ID exists
func (r *GormProjectRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a project by ID
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// FindByTitle finds a project by title
func (r *GormProjectRepository) FindByTitle(title string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("title = ?", title).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByStartDate returns projects whose start date matches exactly
func (r *GormProjectRepository) FindByStartDate(startDate time.Time) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("start_date = ?", startDate).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByLeadID returns all projects led by the given user
func (r *GormProjectRepository) FindByLeadID(leadID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("lead_id = ?", leadID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByPeriod returns projects whose start date falls in [start, end] inclusive
func (r *GormProjectRepository) FindByPeriod(start, end time.Time) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("start_date BETWEEN ? AND ?", start, end).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindAssignedUsers returns the distinct users assigned to tasks under a project
func (r *GormProjectRepository) FindAssignedUsers(projectID uint64) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Distinct("users.*").
		Joins("JOIN tasks ON tasks.assignee_id = users.id").
		Where("tasks.project_id = ?", projectID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
