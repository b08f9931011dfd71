package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type userHandlerTestSuite struct {
	router  *gin.Engine
	service *mockUserService
}

func setupUserHandlerTestSuite(t *testing.T) *userHandlerTestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := new(mockUserService)
	router := gin.New()
	NewUserHandler(svc, zap.NewNop()).RegisterRoutes(router.Group("/"))
	return &userHandlerTestSuite{router: router, service: svc}
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	reqBody := models.CreateUserRequest{
		Email:    "test@example.com",
		FullName: "Test User",
		Password: "password123",
	}
	jsonBody, _ := json.Marshal(reqBody)

	mockUser := &models.User{
		ID:        1,
		Email:     reqBody.Email,
		FullName:  reqBody.FullName,
		CreatedAt: time.Now().UTC(),
	}

	ts.service.On("CreateUser", mock.Anything, mock.MatchedBy(func(r models.CreateUserRequest) bool {
		return r.Email == reqBody.Email && r.FullName == reqBody.FullName
	})).Return(mockUser, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var respBody map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Email, respBody["email"])
	assert.NotContains(t, respBody, "password_hash")

	ts.service.AssertExpectations(t)
}

func TestUserHandler_CreateUser_Conflict_EmailExists(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	reqBody := models.CreateUserRequest{Email: "exists@example.com", FullName: "Existing User", Password: "password"}
	jsonBody, _ := json.Marshal(reqBody)

	ts.service.On("CreateUser", mock.Anything, mock.AnythingOfType("models.CreateUserRequest")).
		Return(nil, fmt.Errorf("creating user: %w", domainErrors.ErrEmailExists)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "User with email exists@example.com already exists", respBody["error"])

	ts.service.AssertExpectations(t)
}

func TestUserHandler_CreateUser_BadRequest_MalformedJSON(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	ts.service.On("GetUser", mock.Anything, int64(42)).
		Return(nil, domainErrors.ErrUserNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users/42", nil)
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "User with ID 42 not found", respBody["error"])

	ts.service.AssertExpectations(t)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users/abc", nil)
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateUser_Success(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	newEmail := "new@example.com"
	reqBody := models.UpdateUserRequest{Email: &newEmail}
	jsonBody, _ := json.Marshal(reqBody)

	mockUser := &models.User{ID: 7, FullName: "Kept Name", Email: newEmail}
	ts.service.On("UpdateUser", mock.Anything, int64(7), mock.AnythingOfType("models.UpdateUserRequest")).
		Return(mockUser, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/users/7", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, newEmail, respBody["email"])
	assert.Equal(t, "Kept Name", respBody["full_name"])

	ts.service.AssertExpectations(t)
}

func TestUserHandler_DeleteUser_NoContent(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	ts.service.On("DeleteUser", mock.Anything, int64(3)).Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/users/3", nil)
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	ts.service.AssertExpectations(t)
}

func TestUserHandler_ListUsers_InternalError(t *testing.T) {
	ts := setupUserHandlerTestSuite(t)

	ts.service.On("ListUsers", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "Internal server error", respBody["error"])

	ts.service.AssertExpectations(t)
}
