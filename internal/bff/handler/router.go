package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/service"
	"github.com/schooldevops/openapi-hub/internal/handler/http/middleware"
)

// RouterDeps bundles everything the BFF router needs.
type RouterDeps struct {
	AuthService         *service.AuthService
	RegistrationService *service.RegistrationService
	StreetlightService  *service.StreetlightService
	SpecService         *service.SpecService
	Logger              *zap.Logger
}

// NewRouter builds the gin engine with the public and protected BFF routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CorsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/")
	NewAuthHandler(deps.AuthService, deps.Logger).RegisterRoutes(public)

	projectHandler := NewProjectHandler(deps.RegistrationService, deps.Logger)
	projectHandler.RegisterPublicRoutes(public)

	protected := router.Group("/")
	protected.Use(AuthMiddleware(deps.AuthService))
	projectHandler.RegisterProtectedRoutes(protected)
	NewStreetlightHandler(deps.StreetlightService, deps.Logger).RegisterRoutes(protected)
	NewSpecHandler(deps.SpecService, deps.Logger).RegisterRoutes(protected)

	return router
}
