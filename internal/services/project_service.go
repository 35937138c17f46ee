package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProject persists a new project. Titles are not unique and the lead
// reference is stored without an existence check.
func (s *ProjectService) CreateProject(project *models.Project) (*models.Project, error) {
	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProjects returns every project.
func (s *ProjectService) GetProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectByTitle retrieves a project by title.
func (s *ProjectService) GetProjectByTitle(title string) (*models.Project, error) {
	project, err := s.projectRepo.FindByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProjectsByStartDate returns projects starting at exactly the given instant.
func (s *ProjectService) GetProjectsByStartDate(startDate time.Time) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByStartDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by start date: %w", err)
	}
	return projects, nil
}

// GetProjectsByLead returns all projects led by the given user.
func (s *ProjectService) GetProjectsByLead(leadID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByLeadID(leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by lead: %w", err)
	}
	return projects, nil
}

// GetProjectsByPeriod returns projects whose start date falls in [start, end].
func (s *ProjectService) GetProjectsByPeriod(start, end time.Time) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByPeriod(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by period: %w", err)
	}
	return projects, nil
}

// GetAssignedUsers returns the distinct users assigned to tasks under a project.
func (s *ProjectService) GetAssignedUsers(projectID uint64) ([]models.User, error) {
	users, err := s.projectRepo.FindAssignedUsers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned users: %w", err)
	}
	return users, nil
}

// UpdateProject replaces the stored project wholesale, forcing its ID.
func (s *ProjectService) UpdateProject(id uint64, project *models.Project) (*models.Project, error) {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	project.ID = id
	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project by ID. Tasks under the project are not
// cascade-deleted.
func (s *ProjectService) DeleteProject(id uint64) error {
	exists, err := s.projectRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
