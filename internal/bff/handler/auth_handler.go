package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/service"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// AuthHandler serves /auth/login.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger.With(zap.String("handler", "auth"))}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/login", h.Login)
}

// Login accepts OAuth2 password-grant form fields or a JSON body with the
// same username/password pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	contentType := c.ContentType()
	if strings.Contains(contentType, "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid login data format", domainErrors.CodeValidation)
			return
		}
	} else {
		req.Username = c.PostForm("username")
		req.Password = c.PostForm("password")
	}

	if req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Invalid login data format", domainErrors.CodeValidation)
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			respondError(c, http.StatusUnauthorized, "Incorrect username or password", domainErrors.CodeUnauthorized)
			return
		}
		respondServiceError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
