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

// ProjectCredentialService defines the credential operations the handler depends on.
type ProjectCredentialService interface {
	ListCredentials(ctx context.Context) ([]*models.ProjectCredential, error)
	GetCredential(ctx context.Context, id int64) (*models.ProjectCredential, error)
	ListCredentialsByProject(ctx context.Context, projectID int64) ([]*models.ProjectCredential, error)
	CreateCredential(ctx context.Context, req models.CreateProjectCredentialRequest) (*models.ProjectCredential, error)
	UpdateCredential(ctx context.Context, id int64, req models.UpdateProjectCredentialRequest) (*models.ProjectCredential, error)
	DeleteCredential(ctx context.Context, id int64) error
}

// ProjectCredentialHandler serves the /project_credentials resource.
type ProjectCredentialHandler struct {
	service ProjectCredentialService
	logger  *zap.Logger
}

func NewProjectCredentialHandler(service ProjectCredentialService, logger *zap.Logger) *ProjectCredentialHandler {
	return &ProjectCredentialHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "project_credential")),
	}
}

func (h *ProjectCredentialHandler) RegisterRoutes(router *gin.RouterGroup) {
	credentials := router.Group("/project_credentials")
	{
		credentials.GET("", h.ListCredentials)
		credentials.POST("", h.CreateCredential)
		credentials.GET("/:id", h.GetCredential)
		credentials.PUT("/:id", h.UpdateCredential)
		credentials.DELETE("/:id", h.DeleteCredential)
		credentials.GET("/project/:project_id", h.ListCredentialsByProject)
	}
}

func (h *ProjectCredentialHandler) ListCredentials(c *gin.Context) {
	credentials, err := h.service.ListCredentials(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Project credentials not found", h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, credentials)
}

func (h *ProjectCredentialHandler) GetCredential(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project credential ID", h.logger)
	if !ok {
		return
	}

	credential, err := h.service.GetCredential(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project credential with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, credential)
}

func (h *ProjectCredentialHandler) ListCredentialsByProject(c *gin.Context) {
	projectID, err := parsePathInt(c, "project_id")
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid project ID", domainErrors.CodeValidation, h.logger)
		return
	}

	credentials, err := h.service.ListCredentialsByProject(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project with ID %d not found", projectID), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, credentials)
}

func (h *ProjectCredentialHandler) CreateCredential(c *gin.Context) {
	var req models.CreateProjectCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	credential, err := h.service.CreateCredential(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Project credential not found", h.logger)
		return
	}
	RespondWithCreated(c, credential)
}

func (h *ProjectCredentialHandler) UpdateCredential(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project credential ID", h.logger)
	if !ok {
		return
	}

	var req models.UpdateProjectCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	credential, err := h.service.UpdateCredential(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project credential with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, credential)
}

func (h *ProjectCredentialHandler) DeleteCredential(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project credential ID", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteCredential(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project credential with ID %d not found", id), h.logger)
		return
	}
	RespondWithNoContent(c)
}
