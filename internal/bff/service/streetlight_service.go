package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/kafka"
	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/store"
	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
)

// Allowed lighting windows. Summer lights run 21:00 to 06:00, winter
// 19:00 to 08:00.
const (
	summerStartHour = 21
	summerEndHour   = 6
	winterStartHour = 19
	winterEndHour   = 8
)

// StreetlightService publishes commands and validates lighting schedules.
type StreetlightService struct {
	publisher   kafka.Publisher
	schedules   store.ScheduleStore
	topicPrefix string
	logger      *zap.Logger
}

// NewStreetlightService creates a new StreetlightService.
func NewStreetlightService(publisher kafka.Publisher, schedules store.ScheduleStore, topicPrefix string, logger *zap.Logger) *StreetlightService {
	return &StreetlightService{
		publisher:   publisher,
		schedules:   schedules,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// Turn publishes an on/off command for a streetlight. Any other command is
// rejected.
func (s *StreetlightService) Turn(ctx context.Context, streetlightID, command string) error {
	if command != "on" && command != "off" {
		return fmt.Errorf("%w: invalid command %q", domainErrors.ErrInvalidRequest, command)
	}

	topic := fmt.Sprintf("%s.%s.turn.%s", s.topicPrefix, streetlightID, command)
	message := models.CommandMessage{
		Command: command,
		SentAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, topic, message); err != nil {
		return fmt.Errorf("failed to publish command: %w", err)
	}

	s.logger.Info("streetlight command sent",
		zap.String("streetlight_id", streetlightID),
		zap.String("command", command),
		zap.String("topic", topic),
	)
	return nil
}

// UpdateSchedule validates the window for the season and records it.
func (s *StreetlightService) UpdateSchedule(ctx context.Context, req models.ScheduleRequest) error {
	startHour, err := parseHour(req.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid time format", domainErrors.ErrInvalidSchedule)
	}
	endHour, err := parseHour(req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid time format", domainErrors.ErrInvalidSchedule)
	}

	switch req.Season {
	case models.SeasonSummer:
		if startHour != summerStartHour || endHour != summerEndHour {
			return fmt.Errorf("%w: summer schedule must be from 21:00 to 06:00", domainErrors.ErrInvalidSchedule)
		}
	case models.SeasonWinter:
		if startHour != winterStartHour || endHour != winterEndHour {
			return fmt.Errorf("%w: winter schedule must be from 19:00 to 08:00", domainErrors.ErrInvalidSchedule)
		}
	default:
		return fmt.Errorf("%w: unknown season %q", domainErrors.ErrInvalidSchedule, req.Season)
	}

	schedule := models.Schedule{
		Season:    req.Season,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.schedules.SaveSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("failed to record schedule: %w", err)
	}

	s.logger.Info("schedule updated", zap.String("season", string(req.Season)))
	return nil
}

func parseHour(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}
