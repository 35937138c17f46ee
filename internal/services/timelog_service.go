package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"gorm.io/gorm"
)

var ErrTimeLogNotFound = errors.New("time log not found")

// TimeLogService handles time tracking business logic.
type TimeLogService struct {
	timeLogRepo repository.TimeLogRepository
}

// NewTimeLogService creates a new TimeLogService.
func NewTimeLogService(timeLogRepo repository.TimeLogRepository) *TimeLogService {
	return &TimeLogService{timeLogRepo: timeLogRepo}
}

// CreateTimeLog persists a new time log. The session duration is stored as
// given and end-before-start sessions are accepted.
func (s *TimeLogService) CreateTimeLog(timeLog *models.TimeLog) (*models.TimeLog, error) {
	if err := s.timeLogRepo.Save(timeLog); err != nil {
		return nil, fmt.Errorf("failed to create time log: %w", err)
	}
	return timeLog, nil
}

// GetTimeLog retrieves a time log by ID.
func (s *TimeLogService) GetTimeLog(id uint64) (*models.TimeLog, error) {
	timeLog, err := s.timeLogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeLogNotFound
		}
		return nil, fmt.Errorf("failed to find time log: %w", err)
	}
	return timeLog, nil
}

// GetTimeLogs returns every time log.
func (s *TimeLogService) GetTimeLogs() ([]models.TimeLog, error) {
	timeLogs, err := s.timeLogRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	return timeLogs, nil
}

// GetTimeLogsByPeriod returns time logs whose start time falls in [start, end].
func (s *TimeLogService) GetTimeLogsByPeriod(start, end time.Time) ([]models.TimeLog, error) {
	timeLogs, err := s.timeLogRepo.FindByPeriod(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs by period: %w", err)
	}
	return timeLogs, nil
}

// GetTimeLogsByUser returns all time logs recorded by a user.
func (s *TimeLogService) GetTimeLogsByUser(userID uint64) ([]models.TimeLog, error) {
	timeLogs, err := s.timeLogRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs by user: %w", err)
	}
	return timeLogs, nil
}

// GetTimeLogsByUserAndTask returns a user's time logs for a specific task.
func (s *TimeLogService) GetTimeLogsByUserAndTask(userID, taskID uint64) ([]models.TimeLog, error) {
	timeLogs, err := s.timeLogRepo.FindByUserAndTask(userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs by user and task: %w", err)
	}
	return timeLogs, nil
}

// GetTotalDuration sums the session durations for a user/task pair. A nil
// result means no sessions matched, which the boundary layer reports as not
// found; a pair whose sessions sum to zero is indistinguishable here.
func (s *TimeLogService) GetTotalDuration(userID, taskID uint64) (*int64, error) {
	total, err := s.timeLogRepo.SumDurationByUserAndTask(userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum session durations: %w", err)
	}
	return total, nil
}

// UpdateTimeLog replaces the stored time log wholesale, forcing its ID.
func (s *TimeLogService) UpdateTimeLog(id uint64, timeLog *models.TimeLog) (*models.TimeLog, error) {
	if _, err := s.timeLogRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeLogNotFound
		}
		return nil, fmt.Errorf("failed to find time log: %w", err)
	}

	timeLog.ID = id
	if err := s.timeLogRepo.Save(timeLog); err != nil {
		return nil, fmt.Errorf("failed to update time log: %w", err)
	}
	return timeLog, nil
}

// DeleteTimeLog removes a time log by ID.
func (s *TimeLogService) DeleteTimeLog(id uint64) error {
	exists, err := s.timeLogRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check time log: %w", err)
	}
	if !exists {
		return ErrTimeLogNotFound
	}

	if err := s.timeLogRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete time log: %w", err)
	}
	return nil
}
