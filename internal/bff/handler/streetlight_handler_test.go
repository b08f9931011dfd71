package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
	"github.com/schooldevops/openapi-hub/internal/bff/service"
	"github.com/schooldevops/openapi-hub/internal/bff/store"
	"github.com/schooldevops/openapi-hub/internal/config"
	"github.com/schooldevops/openapi-hub/internal/infrastructure/security"
)

// recordingPublisher captures published command messages.
type recordingPublisher struct {
	topics   []string
	payloads []any
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload any) error {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type streetlightSuite struct {
	router    *gin.Engine
	publisher *recordingPublisher
	token     string
}

func setupStreetlightSuite(t *testing.T) *streetlightSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher, err := security.NewArgon2idPasswordHasher(security.DefaultArgon2idParams())
	require.NoError(t, err)
	tokens, err := security.NewTokenManager(config.JWTConfig{
		Secret:         "test-secret",
		Issuer:         "bff-test",
		AccessTokenTTL: 30 * time.Minute,
	})
	require.NoError(t, err)

	st := store.NewMemoryStore()
	logger := zap.NewNop()
	publisher := &recordingPublisher{}

	hash, err := hasher.HashPassword("secure123")
	require.NoError(t, err)
	require.NoError(t, st.PutUser(&models.User{Username: "operator", PasswordHash: hash, Role: models.RoleOperator}))

	authService := service.NewAuthService(st, hasher, tokens, logger)
	router := NewRouter(RouterDeps{
		AuthService:         authService,
		RegistrationService: service.NewRegistrationService(st, hasher, logger),
		StreetlightService:  service.NewStreetlightService(publisher, store.NewMemoryScheduleStore(), "smartylighting.streetlights.1.0.action", logger),
		SpecService:         service.NewSpecService(st, logger),
		Logger:              logger,
	})

	token, err := authService.Login("operator", "secure123")
	require.NoError(t, err)

	return &streetlightSuite{router: router, publisher: publisher, token: token}
}

func (ts *streetlightSuite) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.token)
	ts.router.ServeHTTP(w, req)
	return w
}

func TestStreetlightHandler_Turn_Success(t *testing.T) {
	ts := setupStreetlightSuite(t)

	w := ts.post(t, "/streetlights/light-7/turn/on", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ts.publisher.topics, 1)
	assert.Equal(t, "smartylighting.streetlights.1.0.action.light-7.turn.on", ts.publisher.topics[0])

	var respBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "success", respBody["status"])
	assert.Equal(t, "Streetlight light-7 on command sent", respBody["message"])
}

func TestStreetlightHandler_Turn_InvalidCommand(t *testing.T) {
	ts := setupStreetlightSuite(t)

	w := ts.post(t, "/streetlights/light-7/turn/dim", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ts.publisher.topics)

	var respBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "Invalid command", respBody["error"])
}

func TestStreetlightHandler_Turn_Unauthenticated(t *testing.T) {
	ts := setupStreetlightSuite(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/streetlights/light-7/turn/on", nil)
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, ts.publisher.topics)
}

func TestStreetlightHandler_UpdateSchedule_Valid(t *testing.T) {
	ts := setupStreetlightSuite(t)

	w := ts.post(t, "/streetlights/schedule", models.ScheduleRequest{
		Season:    models.SeasonSummer,
		StartTime: "21:00",
		EndTime:   "06:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var respBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "Schedule updated for SUMMER", respBody["message"])
}

func TestStreetlightHandler_UpdateSchedule_InvalidWindow(t *testing.T) {
	ts := setupStreetlightSuite(t)

	w := ts.post(t, "/streetlights/schedule", models.ScheduleRequest{
		Season:    models.SeasonSummer,
		StartTime: "08:00",
		EndTime:   "17:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
