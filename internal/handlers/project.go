package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techforing/project-tracking-api/internal/dto"
	apierrors "github.com/techforing/project-tracking-api/internal/errors"
	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/services"
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

// ListProjects returns every project. An empty table reports not-found.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	if len(projects) == 0 {
		apierrors.NotFound(c, "No projects found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToProjectDTOs(projects),
		"message": "All projects fetched successfully.",
	})
}

// CreateProject creates a new project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBindingError(c, err)
		return
	}

	project := models.Project{
		ProjectName: req.ProjectName,
		Description: req.Description,
		OwnerID:     req.Owner,
	}

	if err := h.projectService.Create(&project); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    dto.ToProjectDTO(project),
		"message": "Project created successfully.",
	})
}

// GetProject returns a project by ID.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToProjectDTO(*project),
		"message": fmt.Sprintf("Project of id %d fetched successfully.", project.ID),
	})
}

// ListProjectMembers returns the members of a project. An empty membership
// reports not-found.
func (h *ProjectHandler) ListProjectMembers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.projectService.Members(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	if len(members) == 0 {
		apierrors.NotFound(c, "No members found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToProjectMemberDTOs(members),
		"message": fmt.Sprintf("Members of project %d fetched successfully.", id),
	})
}

// UpdateProject applies a partial update to a project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if v, ok := rawReq["project_name"].(string); ok {
		project.ProjectName = v
	}
	if v, ok := rawReq["description"].(string); ok {
		project.Description = v
	}
	if v, ok := rawReq["owner"].(float64); ok {
		if v < 0 {
			apierrors.FieldErrors{"owner": {"Owner must be a positive integer."}}.Respond(c)
			return
		}
		project.OwnerID = uint64(v)
	}

	if err := h.projectService.Update(project); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToProjectDTO(*project),
		"message": fmt.Sprintf("Project of id %d updated successfully.", project.ID),
	})
}

// DeleteProject removes a project with its members, tasks, and comments.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOwnerNotFound):
		apierrors.FieldErrors{"owner": {"Owner user does not exist."}}.Respond(c)
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found.")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
