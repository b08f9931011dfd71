package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// ResponseError is the error body returned by all endpoints.
type ResponseError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RespondWithError sends an error response and logs it.
func RespondWithError(c *gin.Context, statusCode int, message string, errorCode string, logger *zap.Logger) {
	logger.Error("API error response",
		zap.Int("status_code", statusCode),
		zap.String("error_message", message),
		zap.String("error_code", errorCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	c.JSON(statusCode, ResponseError{
		Error: message,
		Code:  errorCode,
	})
}

// RespondWithData sends a successful response with a payload.
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondWithCreated sends a 201 response with the created resource.
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondWithNoContent sends an empty 204 response.
func RespondWithNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// respondServiceError maps a service error to the HTTP taxonomy:
// not-found 404, conflict 409, bad request 400, anything else 500 with a
// generic message.
func respondServiceError(c *gin.Context, err error, notFoundMessage string, logger *zap.Logger) {
	switch {
	case domainErrors.IsNotFound(err):
		RespondWithError(c, http.StatusNotFound, notFoundMessage, domainErrors.CodeNotFound, logger)
	case domainErrors.IsConflict(err):
		RespondWithError(c, http.StatusConflict, err.Error(), domainErrors.CodeConflict, logger)
	case domainErrors.IsBadRequest(err):
		RespondWithError(c, http.StatusBadRequest, err.Error(), domainErrors.CodeValidation, logger)
	default:
		logger.Error("unexpected service error", zap.Error(err))
		RespondWithError(c, http.StatusInternalServerError, "Internal server error", domainErrors.CodeInternal, logger)
	}
}
