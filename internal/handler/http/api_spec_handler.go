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

// APISpecService defines the API specification operations the handler depends on.
type APISpecService interface {
	ListSpecs(ctx context.Context) ([]models.APISpecResponse, error)
	GetSpec(ctx context.Context, id int64) (models.APISpecResponse, error)
	CreateSpec(ctx context.Context, req models.CreateAPISpecRequest) (models.APISpecResponse, error)
	UpdateSpec(ctx context.Context, id int64, req models.UpdateAPISpecRequest) (models.APISpecResponse, error)
	DeleteSpec(ctx context.Context, id int64) error
}

// APISpecHandler serves the /api_specs resource.
type APISpecHandler struct {
	service APISpecService
	logger  *zap.Logger
}

func NewAPISpecHandler(service APISpecService, logger *zap.Logger) *APISpecHandler {
	return &APISpecHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "api_spec")),
	}
}

func (h *APISpecHandler) RegisterRoutes(router *gin.RouterGroup) {
	specs := router.Group("/api_specs")
	{
		specs.GET("", h.ListSpecs)
		specs.POST("", h.CreateSpec)
		specs.GET("/:id", h.GetSpec)
		specs.PUT("/:id", h.UpdateSpec)
		specs.DELETE("/:id", h.DeleteSpec)
	}
}

func (h *APISpecHandler) ListSpecs(c *gin.Context) {
	specs, err := h.service.ListSpecs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "API specs not found", h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, specs)
}

func (h *APISpecHandler) GetSpec(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid API spec ID", h.logger)
	if !ok {
		return
	}

	spec, err := h.service.GetSpec(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("API spec with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, spec)
}

func (h *APISpecHandler) CreateSpec(c *gin.Context) {
	var req models.CreateAPISpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	spec, err := h.service.CreateSpec(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "API spec not found", h.logger)
		return
	}
	RespondWithCreated(c, spec)
}

func (h *APISpecHandler) UpdateSpec(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid API spec ID", h.logger)
	if !ok {
		return
	}

	var req models.UpdateAPISpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	spec, err := h.service.UpdateSpec(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("API spec with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, spec)
}

func (h *APISpecHandler) DeleteSpec(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid API spec ID", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteSpec(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("API spec with ID %d not found", id), h.logger)
		return
	}
	RespondWithNoContent(c)
}
