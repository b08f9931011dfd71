package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/service"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// ProjectHandler serves combined registration and project listing.
type ProjectHandler struct {
	registration *service.RegistrationService
	logger       *zap.Logger
}

func NewProjectHandler(registration *service.RegistrationService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{registration: registration, logger: logger.With(zap.String("handler", "project"))}
}

func (h *ProjectHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/projects", h.RegisterProject)
}

func (h *ProjectHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/projects", h.ListProjects)
}

// RegisterProject creates a project and its owner account together.
func (h *ProjectHandler) RegisterProject(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation)
		return
	}

	project, err := h.registration.RegisterProject(req)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUsernameExists):
			respondError(c, http.StatusConflict, "Username already registered", domainErrors.CodeConflict)
		case errors.Is(err, domainErrors.ErrProjectNameExists):
			respondError(c, http.StatusConflict, "Project name already exists", domainErrors.CodeConflict)
		default:
			respondServiceError(c, err, h.logger)
		}
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ListProjects returns every registered project.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.registration.ListProjects())
}
