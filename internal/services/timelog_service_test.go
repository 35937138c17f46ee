package services

import (
	"testing"
	"time"

	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTimeLogService(t *testing.T) (*TimeLogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewTimeLogService(repository.NewTimeLogRepository(db)), db
}

func TestTimeLogService_CreateTimeLog(t *testing.T) {
	svc, _ := newTimeLogService(t)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	// End before start is accepted; the duration is persisted as given.
	timeLog, err := svc.CreateTimeLog(&models.TimeLog{
		StartTime:       now,
		EndTime:         now.Add(-time.Hour),
		UserID:          1,
		TaskID:          10,
		SessionDuration: 3600,
	})
	require.NoError(t, err)
	require.NotZero(t, timeLog.ID)
	assert.Equal(t, int64(3600), timeLog.SessionDuration)
}

func TestTimeLogService_GetTotalDuration(t *testing.T) {
	svc, _ := newTimeLogService(t)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	// No sessions yet: the sum is absent, not zero.
	total, err := svc.GetTotalDuration(1, 10)
	require.NoError(t, err)
	assert.Nil(t, total)

	sessions := []models.TimeLog{
		{StartTime: now, EndTime: now.Add(time.Hour), UserID: 1, TaskID: 10, SessionDuration: 3600},
		{StartTime: now.Add(2 * time.Hour), EndTime: now.Add(3 * time.Hour), UserID: 1, TaskID: 10, SessionDuration: 1800},
		{StartTime: now, EndTime: now.Add(time.Hour), UserID: 1, TaskID: 11, SessionDuration: 600},
		{StartTime: now, EndTime: now.Add(time.Hour), UserID: 2, TaskID: 10, SessionDuration: 600},
	}
	for i := range sessions {
		_, err := svc.CreateTimeLog(&sessions[i])
		require.NoError(t, err)
	}

	total, err = svc.GetTotalDuration(1, 10)
	require.NoError(t, err)
	require.NotNil(t, total)
	assert.Equal(t, int64(5400), *total)
}

func TestTimeLogService_GetTimeLogsByPeriod_InclusiveBounds(t *testing.T) {
	svc, _ := newTimeLogService(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, at := range []time.Time{
		start.Add(-time.Second),
		start,
		start.Add(time.Hour),
		end,
		end.Add(time.Second),
	} {
		_, err := svc.CreateTimeLog(&models.TimeLog{
			StartTime: at,
			EndTime:   at.Add(time.Hour),
			UserID:    1,
			TaskID:    10,
		})
		require.NoError(t, err)
	}

	timeLogs, err := svc.GetTimeLogsByPeriod(start, end)
	require.NoError(t, err)
	assert.Len(t, timeLogs, 3)
}

func TestTimeLogService_GetTimeLogsByUserAndTask(t *testing.T) {
	svc, _ := newTimeLogService(t)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, tl := range []models.TimeLog{
		{StartTime: now, UserID: 1, TaskID: 10},
		{StartTime: now, UserID: 1, TaskID: 11},
		{StartTime: now, UserID: 2, TaskID: 10},
	} {
		_, err := svc.CreateTimeLog(&tl)
		require.NoError(t, err)
	}

	byUser, err := svc.GetTimeLogsByUser(1)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byUserAndTask, err := svc.GetTimeLogsByUserAndTask(1, 10)
	require.NoError(t, err)
	assert.Len(t, byUserAndTask, 1)
}

func TestTimeLogService_UpdateTimeLog(t *testing.T) {
	svc, db := newTimeLogService(t)

	_, err := svc.UpdateTimeLog(99, &models.TimeLog{UserID: 1, TaskID: 10})
	require.ErrorIs(t, err, ErrTimeLogNotFound)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.CreateTimeLog(&models.TimeLog{
		StartTime:       now,
		EndTime:         now.Add(time.Hour),
		UserID:          1,
		TaskID:          10,
		SessionDuration: 3600,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTimeLog(created.ID, &models.TimeLog{
		ID:              321,
		StartTime:       now,
		EndTime:         now.Add(30 * time.Minute),
		UserID:          1,
		TaskID:          10,
		SessionDuration: 1800,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	var stored models.TimeLog
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, int64(1800), stored.SessionDuration)
}

func TestTimeLogService_DeleteTimeLog(t *testing.T) {
	svc, _ := newTimeLogService(t)

	require.ErrorIs(t, svc.DeleteTimeLog(42), ErrTimeLogNotFound)

	created, err := svc.CreateTimeLog(&models.TimeLog{UserID: 1, TaskID: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTimeLog(created.ID))

	_, err = svc.GetTimeLog(created.ID)
	require.ErrorIs(t, err, ErrTimeLogNotFound)
}
