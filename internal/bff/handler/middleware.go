package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/service"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

const currentUserKey = "current_user"

// AuthMiddleware validates the bearer token and attaches the resolved user
// to the request context.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c)
			return
		}

		user, err := auth.Authenticate(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Could not validate credentials",
		"code":  domainErrors.CodeUnauthorized,
	})
}

// currentUsername returns the authenticated username, empty when the
// middleware did not run.
func currentUsername(c *gin.Context) string {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return ""
	}
	user, ok := value.(*models.User)
	if !ok {
		return ""
	}
	return user.Username
}
