package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/config"
)

// ScheduleStore records the last accepted lighting window per season.
type ScheduleStore interface {
	SaveSchedule(ctx context.Context, schedule models.Schedule) error
	LastSchedule(ctx context.Context, season models.Season) (*models.Schedule, error)
}

// ErrScheduleNotFound is returned when no schedule has been accepted for a
// season yet.
var ErrScheduleNotFound = errors.New("no schedule recorded for season")

// RedisScheduleStore keeps schedules in Redis, one key per season.
type RedisScheduleStore struct {
	client *redis.Client
}

var _ ScheduleStore = (*RedisScheduleStore)(nil)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisScheduleStore creates a ScheduleStore on an existing client.
func NewRedisScheduleStore(client *redis.Client) *RedisScheduleStore {
	return &RedisScheduleStore{client: client}
}

func scheduleKey(season models.Season) string {
	return fmt.Sprintf("streetlight:schedule:%s", season)
}

func (s *RedisScheduleStore) SaveSchedule(ctx context.Context, schedule models.Schedule) error {
	payload, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}
	if err := s.client.Set(ctx, scheduleKey(schedule.Season), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store schedule: %w", err)
	}
	return nil
}

func (s *RedisScheduleStore) LastSchedule(ctx context.Context, season models.Season) (*models.Schedule, error) {
	payload, err := s.client.Get(ctx, scheduleKey(season)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	var schedule models.Schedule
	if err := json.Unmarshal(payload, &schedule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
	}
	return &schedule, nil
}

// MemoryScheduleStore is the in-process ScheduleStore used in tests and
// single-node setups.
type MemoryScheduleStore struct {
	mu        sync.RWMutex
	schedules map[models.Season]models.Schedule
}

var _ ScheduleStore = (*MemoryScheduleStore)(nil)

// NewMemoryScheduleStore creates an empty MemoryScheduleStore.
func NewMemoryScheduleStore() *MemoryScheduleStore {
	return &MemoryScheduleStore{schedules: make(map[models.Season]models.Schedule)}
}

func (s *MemoryScheduleStore) SaveSchedule(_ context.Context, schedule models.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[schedule.Season] = schedule
	return nil
}

func (s *MemoryScheduleStore) LastSchedule(_ context.Context, season models.Season) (*models.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schedule, ok := s.schedules[season]
	if !ok {
		return nil, ErrScheduleNotFound
	}
	return &schedule, nil
}
