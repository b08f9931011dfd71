package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/service"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// StreetlightHandler serves streetlight control and scheduling.
type StreetlightHandler struct {
	streetlights *service.StreetlightService
	logger       *zap.Logger
}

func NewStreetlightHandler(streetlights *service.StreetlightService, logger *zap.Logger) *StreetlightHandler {
	return &StreetlightHandler{streetlights: streetlights, logger: logger.With(zap.String("handler", "streetlight"))}
}

func (h *StreetlightHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/streetlights/:id/turn/:command", h.Turn)
	router.POST("/streetlights/schedule", h.UpdateSchedule)
}

// Turn publishes an on/off command for a streetlight.
func (h *StreetlightHandler) Turn(c *gin.Context) {
	streetlightID := c.Param("id")
	command := c.Param("command")

	if err := h.streetlights.Turn(c.Request.Context(), streetlightID, command); err != nil {
		if domainErrors.IsBadRequest(err) {
			respondError(c, http.StatusBadRequest, "Invalid command", domainErrors.CodeValidation)
			return
		}
		respondServiceError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Streetlight %s %s command sent", streetlightID, command),
	})
}

// UpdateSchedule validates and records a seasonal lighting window.
func (h *StreetlightHandler) UpdateSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", domainErrors.CodeValidation)
		return
	}

	if err := h.streetlights.UpdateSchedule(c.Request.Context(), req); err != nil {
		respondServiceError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Schedule updated for %s", req.Season),
	})
}
