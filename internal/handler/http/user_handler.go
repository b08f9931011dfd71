package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

// UserService defines the user operations the handler depends on.
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserHandler serves the /users resource.
type UserHandler struct {
	service UserService
	logger  *zap.Logger
}

func NewUserHandler(service UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "user")),
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Users not found", h.logger)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	RespondWithData(c, http.StatusOK, responses)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid user ID", h.logger)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, user.ToResponse())
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmailExists) {
			RespondWithError(c, http.StatusConflict,
				fmt.Sprintf("User with email %s already exists", req.Email), domainErrors.CodeConflict, h.logger)
			return
		}
		respondServiceError(c, err, "User not found", h.logger)
		return
	}
	RespondWithData(c, http.StatusCreated, user.ToResponse())
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid user ID", h.logger)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation, h.logger)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", id), h.logger)
		return
	}
	RespondWithData(c, http.StatusOK, user.ToResponse())
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid user ID", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", id), h.logger)
		return
	}
	RespondWithNoContent(c)
}

// parseIDParam reads the ":id" path parameter as an int64.
func parseIDParam(c *gin.Context, invalidMessage string, logger *zap.Logger) (int64, bool) {
	id, err := parsePathInt(c, "id")
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, invalidMessage, domainErrors.CodeValidation, logger)
		return 0, false
	}
	return id, true
}

func parsePathInt(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
