package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

// ProjectMemberService defines the membership operations the handler depends on.
type ProjectMemberService interface {
	ListMembers(ctx context.Context) ([]*models.ProjectMember, error)
	GetMember(ctx context.Context, id int64) (*models.ProjectMember, error)
	CreateMember(ctx context.Context, req models.CreateProjectMemberRequest) (*models.ProjectMember, error)
	UpdateMember(ctx context.Context, id int64, req models.UpdateProjectMemberRequest) (*models.ProjectMember, error)
	DeleteMember(ctx context.Context, id int64) error
}

// ProjectMemberHandler serves the /project_members resource.
type ProjectMemberHandler struct {
	service ProjectMemberService
	logger  *zap.Logger
}

func NewProjectMemberHandler(service ProjectMemberService, logger *zap.Logger) *ProjectMemberHandler {
	return &ProjectMemberHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "project_member")),
	}
}

func (h *ProjectMemberHandler) RegisterRoutes(router *gin.RouterGroup) {
	members := router.Group("/project_members")
	{
		members.GET("", h.ListMembers)
		members.POST("", h.CreateMember)
		members.GET("/:id", h.GetMember)
		members.PUT("/:id", h.UpdateMember)
		members.DELETE("/:id", h.DeleteMember)
	}
}

func (h *ProjectMemberHandler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Project members not found", h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, members)
}

func (h *ProjectMemberHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project member ID", h.logger)
	if !ok {
		return
	}

	member, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project member with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, member)
}

func (h *ProjectMemberHandler) CreateMember(c *gin.Context) {
	var req models.CreateProjectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	member, err := h.service.CreateMember(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMemberExists) {
			RespondWithError(c, http.StatusConflict,
				"User is already a member of this project", domainErrors.CodeConflict, h.logger)
			return
		}
		respondServiceError(c, err, "Project member not found", h.logger)
		return
	}
	RespondWithCreated(c, member)
}

func (h *ProjectMemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project member ID", h.logger)
	if !ok {
		return
	}

	var req models.UpdateProjectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project member with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, member)
}

func (h *ProjectMemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project member ID", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("Project member with ID %d not found", id), h.logger)
		return
	}
	RespondWithNoContent(c)
}
