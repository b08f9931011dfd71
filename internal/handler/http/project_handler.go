package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

// ProjectService defines the project operations the handler depends on.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, req models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// ProjectHandler serves the /projects resource.
type ProjectHandler struct {
	service ProjectService
	logger  *zap.Logger
}

func NewProjectHandler(service ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "project")),
	}
}

func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Projects not found", h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project ID", h.logger)
	if !ok {
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Project not found", h.logger)
		return
	}
	RespondWithCreated(c, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project ID", h.logger)
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project ID", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project with ID %d not found", id), h.logger)
		return
	}
	RespondWithNoContent(c)
}
