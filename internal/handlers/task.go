package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metaphorce/taskflow/internal/dto"
	apierrors "github.com/metaphorce/taskflow/internal/errors"
	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/services"
	"github.com/metaphorce/taskflow/internal/validation"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string            `json:"title" binding:"required"`
		Description string            `json:"description"`
		CreatorID   uint64            `json:"creator_id" binding:"required"`
		AssigneeID  uint64            `json:"assignee_id" binding:"required"`
		ProjectID   uint64            `json:"project_id" binding:"required"`
		Priority    models.Priority   `json:"priority" binding:"required,priority"`
		Status      models.TaskStatus `json:"status" binding:"required,taskstatus"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(&models.Task{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   req.CreatorID,
		AssigneeID:  req.AssigneeID,
		ProjectID:   req.ProjectID,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListTasks returns every task.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetTasks()
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListTasksByCreator returns tasks created by the given user.
func (h *TaskHandler) ListTasksByCreator(c *gin.Context) {
	creatorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByCreator(creatorID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListTasksByAssignee returns tasks assigned to the given user.
func (h *TaskHandler) ListTasksByAssignee(c *gin.Context) {
	assigneeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByAssignee(assigneeID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListTasksByProject returns tasks belonging to the given project.
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByProject(projectID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListTasksByCreationDate returns tasks created at exactly the given instant.
func (h *TaskHandler) ListTasksByCreationDate(c *gin.Context) {
	createdAt, ok := parseTimeParam(c, "date")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByCreationDate(createdAt)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListTasksByPriority returns tasks with the given priority.
func (h *TaskHandler) ListTasksByPriority(c *gin.Context) {
	priority := models.Priority(c.Param("priority"))
	if !validation.IsValidPriority(priority) {
		apierrors.BadRequest(c, "Invalid priority")
		return
	}

	tasks, err := h.taskService.GetTasksByPriority(priority)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListTasksByStatus returns tasks with the given status.
func (h *TaskHandler) ListTasksByStatus(c *gin.Context) {
	status := models.TaskStatus(c.Param("status"))
	if !validation.IsValidTaskStatus(status) {
		apierrors.BadRequest(c, "Invalid status")
		return
	}

	tasks, err := h.taskService.GetTasksByStatus(status)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// UpdateTask replaces a task record wholesale.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		CreatorID   uint64            `json:"creator_id"`
		AssigneeID  uint64            `json:"assignee_id"`
		ProjectID   uint64            `json:"project_id"`
		Priority    models.Priority   `json:"priority" binding:"omitempty,priority"`
		Status      models.TaskStatus `json:"status" binding:"omitempty,taskstatus"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(id, &models.Task{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   req.CreatorID,
		AssigneeID:  req.AssigneeID,
		ProjectID:   req.ProjectID,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task by ID.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
