package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/service"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// SpecHandler serves per-project API specs.
type SpecHandler struct {
	specs  *service.SpecService
	logger *zap.Logger
}

func NewSpecHandler(specs *service.SpecService, logger *zap.Logger) *SpecHandler {
	return &SpecHandler{specs: specs, logger: logger.With(zap.String("handler", "spec"))}
}

func (h *SpecHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:project_id/specs", h.CreateSpec)
	router.GET("/projects/:project_id/specs", h.ListSpecs)
}

// CreateSpec attaches a spec to a project.
func (h *SpecHandler) CreateSpec(c *gin.Context) {
	projectID := c.Param("project_id")

	var req models.CreateAPISpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation)
		return
	}

	spec, err := h.specs.CreateSpec(projectID, req, currentUsername(c))
	if err != nil {
		if domainErrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "Project not found", domainErrors.CodeNotFound)
			return
		}
		respondServiceError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, spec)
}

// ListSpecs returns the specs attached to a project.
func (h *SpecHandler) ListSpecs(c *gin.Context) {
	projectID := c.Param("project_id")

	specs, err := h.specs.ListSpecs(projectID)
	if err != nil {
		if domainErrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "Project not found", domainErrors.CodeNotFound)
			return
		}
		respondServiceError(c, err, h.logger)
		return
	}
	if specs == nil {
		specs = []*models.APISpec{}
	}
	c.JSON(http.StatusOK, specs)
}
