package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/metaphorce/taskflow/internal/models"
	"gorm.io/gorm"
)

// GormTimeLogRepository is a GORM implementation of TimeLogRepository
type GormTimeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new TimeLogRepository
func NewTimeLogRepository(db *gorm.DB) TimeLogRepository {
	return &GormTimeLogRepository{db: db}
}

// Save inserts or replaces a time log record
func (r *GormTimeLogRepository) Save(timeLog *models.TimeLog) error {
	return r.db.Save(timeLog).Error
}

// FindByID finds a time log by ID
func (r *GormTimeLogRepository) FindByID(id uint64) (*models.TimeLog, error) {
	var timeLog models.TimeLog
	if err := r.db.First(&timeLog, id).Error; err != nil {
		return nil, err
	}
	return &timeLog, nil
}

// FindAll returns every time log
func (r *GormTimeLogRepository) FindAll() ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog
	if err := r.db.Find(&timeLogs).Error; err != nil {
		return nil, err
	}
	return timeLogs, nil
}

// ExistsByID reports whether a time log with the given ID exists
func (r *GormTimeLogRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.TimeLog{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a time log by ID
func (r *GormTimeLogRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TimeLog{}, id).Error
}

// FindByPeriod returns time logs whose start time falls in [start, end] inclusive
func (r *GormTimeLogRepository) FindByPeriod(start, end time.Time) ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog
	if err := r.db.Where("start_time BETWEEN ? AND ?", start, end).Find(&timeLogs).Error; err != nil {
		return nil, err
	}
	return timeLogs, nil
}

// FindByUserID returns all time logs recorded by a user
func (r *GormTimeLogRepository) FindByUserID(userID uint64) ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog
	if err := r.db.Where("user_id = ?", userID).Find(&timeLogs).Error; err != nil {
		return nil, err
	}
	return timeLogs, nil
}

// FindByUserAndTask returns a user's time logs for a specific task
func (r *GormTimeLogRepository) FindByUserAndTask(userID, taskID uint64) ([]models.TimeLog, error) {
	var timeLogs []models.TimeLog
	if err := r.db.Where("user_id = ? AND task_id = ?", userID, taskID).Find(&timeLogs).Error; err != nil {
		return nil, err
	}
	return timeLogs, nil
}

// SumDurationByUserAndTask sums session durations for a user/task pair.
// SUM over zero rows yields SQL NULL, surfaced here as a nil pointer.
func (r *GormTimeLogRepository) SumDurationByUserAndTask(userID, taskID uint64) (*int64, error) {
	var total sql.NullInt64
	err := r.db.Model(&models.TimeLog{}).
		Select("SUM(session_duration)").
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Scan(&total).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !total.Valid {
		return nil, nil
	}
	return &total.Int64, nil
}
