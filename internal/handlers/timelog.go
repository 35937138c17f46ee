package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/metaphorce/taskflow/internal/dto"
	apierrors "github.com/metaphorce/taskflow/internal/errors"
	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/services"
)

// TimeLogHandler coordinates time log HTTP handlers.
type TimeLogHandler struct {
	timeLogService *services.TimeLogService
}

// NewTimeLogHandler creates a new TimeLogHandler.
func NewTimeLogHandler(timeLogService *services.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{
		timeLogService: timeLogService,
	}
}

type timeLogRequest struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	UserID          uint64    `json:"user_id" binding:"required"`
	TaskID          uint64    `json:"task_id" binding:"required"`
	SessionDuration int64     `json:"session_duration"`
}

// CreateTimeLog records a new time tracking session.
func (h *TimeLogHandler) CreateTimeLog(c *gin.Context) {
	var req timeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	timeLog, err := h.timeLogService.CreateTimeLog(&models.TimeLog{
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		UserID:          req.UserID,
		TaskID:          req.TaskID,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimeLogDTO(*timeLog))
}

// ListTimeLogs returns every time log.
func (h *TimeLogHandler) ListTimeLogs(c *gin.Context) {
	timeLogs, err := h.timeLogService.GetTimeLogs()
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTOs(timeLogs))
}

// GetTimeLog returns a time log by ID.
func (h *TimeLogHandler) GetTimeLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	timeLog, err := h.timeLogService.GetTimeLog(id)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTO(*timeLog))
}

// ListTimeLogsByPeriod returns time logs whose start time falls in the
// inclusive [start, end] range given as query parameters.
func (h *TimeLogHandler) ListTimeLogsByPeriod(c *gin.Context) {
	start, end, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	timeLogs, err := h.timeLogService.GetTimeLogsByPeriod(start, end)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTOs(timeLogs))
}

// ListTimeLogsByUser returns all time logs recorded by a user.
func (h *TimeLogHandler) ListTimeLogsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	timeLogs, err := h.timeLogService.GetTimeLogsByUser(userID)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTOs(timeLogs))
}

// ListTimeLogsByUserAndTask returns a user's time logs for a specific task.
func (h *TimeLogHandler) ListTimeLogsByUserAndTask(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	timeLogs, err := h.timeLogService.GetTimeLogsByUserAndTask(userID, taskID)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTOs(timeLogs))
}

// GetTotalDuration returns the summed session duration for a user/task
// pair, or 404 when no sessions match.
func (h *TimeLogHandler) GetTotalDuration(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	total, err := h.timeLogService.GetTotalDuration(userID, taskID)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}
	if total == nil {
		apierrors.NotFound(c, "No time logs found for the given user and task")
		return
	}

	c.JSON(http.StatusOK, dto.TotalDurationDTO{
		UserID:        userID,
		TaskID:        taskID,
		TotalDuration: *total,
	})
}

// UpdateTimeLog replaces a time log record wholesale.
func (h *TimeLogHandler) UpdateTimeLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type updateTimeLogRequest struct {
		StartTime       time.Time `json:"start_time"`
		EndTime         time.Time `json:"end_time"`
		UserID          uint64    `json:"user_id"`
		TaskID          uint64    `json:"task_id"`
		SessionDuration int64     `json:"session_duration"`
	}

	var req updateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	timeLog, err := h.timeLogService.UpdateTimeLog(id, &models.TimeLog{
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		UserID:          req.UserID,
		TaskID:          req.TaskID,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTO(*timeLog))
}

// DeleteTimeLog removes a time log by ID.
func (h *TimeLogHandler) DeleteTimeLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.timeLogService.DeleteTimeLog(id); err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTimeLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTimeLogNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
