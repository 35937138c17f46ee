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

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type projectRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	LeadID      uint64    `json:"lead_id" binding:"required"`
}

// CreateProject creates a new project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(&models.Project{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		LeadID:      req.LeadID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns every project.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.GetProjects()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a project by ID.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// GetProjectByTitle returns a project by title.
func (h *ProjectHandler) GetProjectByTitle(c *gin.Context) {
	project, err := h.projectService.GetProjectByTitle(c.Param("title"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// ListProjectsByStartDate returns projects starting at exactly the given instant.
func (h *ProjectHandler) ListProjectsByStartDate(c *gin.Context) {
	startDate, ok := parseTimeParam(c, "date")
	if !ok {
		return
	}

	projects, err := h.projectService.GetProjectsByStartDate(startDate)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// ListProjectsByLead returns all projects led by the given user.
func (h *ProjectHandler) ListProjectsByLead(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	projects, err := h.projectService.GetProjectsByLead(leadID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// ListProjectsByPeriod returns projects whose start date falls in the
// inclusive [start, end] range given as query parameters.
func (h *ProjectHandler) ListProjectsByPeriod(c *gin.Context) {
	start, end, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	projects, err := h.projectService.GetProjectsByPeriod(start, end)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// ListAssignedUsers returns the distinct users assigned to tasks under a project.
func (h *ProjectHandler) ListAssignedUsers(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.projectService.GetAssignedUsers(projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// UpdateProject replaces a project record wholesale.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type updateProjectRequest struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		StartDate   time.Time `json:"start_date"`
		LeadID      uint64    `json:"lead_id"`
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(id, &models.Project{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		LeadID:      req.LeadID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject removes a project by ID.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
