// Package handler exposes the streetlight BFF HTTP surface.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

func respondError(c *gin.Context, statusCode int, message string, code string) {
	c.JSON(statusCode, gin.H{"error": message, "code": code})
}

// respondServiceError maps a service error onto the shared taxonomy.
func respondServiceError(c *gin.Context, err error, logger *zap.Logger) {
	switch {
	case domainErrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error(), domainErrors.CodeNotFound)
	case domainErrors.IsConflict(err):
		respondError(c, http.StatusConflict, err.Error(), domainErrors.CodeConflict)
	case domainErrors.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, err.Error(), domainErrors.CodeUnauthorized)
	case domainErrors.IsBadRequest(err):
		respondError(c, http.StatusBadRequest, err.Error(), domainErrors.CodeValidation)
	default:
		logger.Error("unexpected service error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error", domainErrors.CodeInternal)
	}
}
