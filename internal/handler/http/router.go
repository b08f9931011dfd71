package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/handler/http/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	UserService       UserService
	ProjectService    ProjectService
	MemberService     ProjectMemberService
	CredentialService ProjectCredentialService
	SpecService       APISpecService
	Logger            *zap.Logger
}

// NewRouter builds the gin engine with middleware and all resource routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.CorsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/")
	NewUserHandler(deps.UserService, deps.Logger).RegisterRoutes(api)
	NewProjectHandler(deps.ProjectService, deps.Logger).RegisterRoutes(api)
	NewProjectMemberHandler(deps.MemberService, deps.Logger).RegisterRoutes(api)
	NewProjectCredentialHandler(deps.CredentialService, deps.Logger).RegisterRoutes(api)
	NewAPISpecHandler(deps.SpecService, deps.Logger).RegisterRoutes(api)

	return router
}
