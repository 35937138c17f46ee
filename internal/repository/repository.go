package repository

import (
	"time"

	"github.com/metaphorce/taskflow/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Save inserts the user when its ID is zero, otherwise replaces the stored record
	Save(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindAll returns every user
	FindAll() ([]models.User, error)

	// ExistsByID reports whether a user with the given ID exists
	ExistsByID(id uint64) (bool, error)

	// Delete removes a user by ID
	Delete(id uint64) error

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByName finds a user by display name
	FindByName(name string) (*models.User, error)

	// FindByRole returns all users with the given role
	FindByRole(role models.Role) ([]models.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Save(project *models.Project) error
	FindByID(id uint64) (*models.Project, error)
	FindAll() ([]models.Project, error)
	ExistsByID(id uint64) (bool, error)
	Delete(id uint64) error

	// FindByTitle finds a project by title
	FindByTitle(title string) (*models.Project, error)

	// FindByStartDate returns projects whose start date matches exactly
	FindByStartDate(startDate time.Time) ([]models.Project, error)

	// FindByLeadID returns all projects led by the given user
	FindByLeadID(leadID uint64) ([]models.Project, error)

	// FindByPeriod returns projects whose start date falls in [start, end] inclusive
	FindByPeriod(start, end time.Time) ([]models.Project, error)

	// FindAssignedUsers returns the distinct users assigned to tasks under a project
	FindAssignedUsers(projectID uint64) ([]models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Save(task *models.Task) error
	FindByID(id uint64) (*models.Task, error)
	FindAll() ([]models.Task, error)
	ExistsByID(id uint64) (bool, error)
	Delete(id uint64) error

	FindByCreatorID(creatorID uint64) ([]models.Task, error)
	FindByAssigneeID(assigneeID uint64) ([]models.Task, error)
	FindByProjectID(projectID uint64) ([]models.Task, error)

	// FindByCreationDate returns tasks created at exactly the given instant
	FindByCreationDate(createdAt time.Time) ([]models.Task, error)

	FindByPriority(priority models.Priority) ([]models.Task, error)
	FindByStatus(status models.TaskStatus) ([]models.Task, error)
}

// TimeLogRepository defines the interface for time log data access
type TimeLogRepository interface {
	Save(timeLog *models.TimeLog) error
	FindByID(id uint64) (*models.TimeLog, error)
	FindAll() ([]models.TimeLog, error)
	ExistsByID(id uint64) (bool, error)
	Delete(id uint64) error

	// FindByPeriod returns time logs whose start time falls in [start, end] inclusive
	FindByPeriod(start, end time.Time) ([]models.TimeLog, error)

	// FindByUserID returns all time logs recorded by a user
	FindByUserID(userID uint64) ([]models.TimeLog, error)

	// FindByUserAndTask returns a user's time logs for a specific task
	FindByUserAndTask(userID, taskID uint64) ([]models.TimeLog, error)

	// SumDurationByUserAndTask sums session durations for a user/task pair.
	// A nil result means no matching rows (SUM over the empty set is NULL).
	SumDurationByUserAndTask(userID, taskID uint64) (*int64, error)
}
