package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/services"
	"github.com/formulamga/mga-backend/internal/types"
)

type ProjectHandler struct {
	log            *logger.Logger
	projectService services.ProjectService
}

func NewProjectHandler(log *logger.Logger, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		log:            log.With("handler", "ProjectHandler"),
		projectService: projectService,
	}
}

type projectPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /api/projects
func (ph *ProjectHandler) Create(c *gin.Context) {
	var payload projectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}
	project, err := ph.projectService.Create(c.Request.Context(), &types.Project{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, project)
}

// GET /api/projects
func (ph *ProjectHandler) List(c *gin.Context) {
	projects, err := ph.projectService.List(c.Request.Context())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, projects)
}

// GET /api/projects/:id
func (ph *ProjectHandler) Get(c *gin.Context) {
	projectID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	project, err := ph.projectService.Get(c.Request.Context(), projectID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, project)
}

// PUT /api/projects/:id
func (ph *ProjectHandler) Update(c *gin.Context) {
	projectID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload projectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeBadRequest, err)
		return
	}
	project, err := ph.projectService.Update(c.Request.Context(), projectID, &types.Project{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, project)
}

// DELETE /api/projects/:id
func (ph *ProjectHandler) Delete(c *gin.Context) {
	projectID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ph.projectService.Delete(c.Request.Context(), projectID); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": projectID})
}
