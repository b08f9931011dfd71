package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
)

func registrationBody(username, projectName string) []byte {
	body, _ := json.Marshal(models.RegistrationRequest{
		Project: models.CreateProjectRequest{
			Name:        projectName,
			Description: "Downtown area streetlight management",
			Location:    "City Center",
		},
		User: models.CreateUserRequest{
			Username: username,
			Email:    username + "@city.com",
			Role:     models.RoleAdmin,
			FullName: "City Manager",
			Password: "secure123",
		},
	})
	return body
}

func (ts *bffTestSuite) registerProject(t *testing.T, username, projectName string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(registrationBody(username, projectName)))
	req.Header.Set("Content-Type", "application/json")
	ts.router.ServeHTTP(w, req)
	return w
}

func TestProjectHandler_RegisterProject_Created(t *testing.T) {
	ts := setupBFFTestSuite(t, 30*time.Minute)

	w := ts.registerProject(t, "citymanager", "City Center Lights")

	assert.Equal(t, http.StatusCreated, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "City Center Lights", project.Name)
	assert.Equal(t, "citymanager", project.Owner.Username)

	// Registration also creates the account, so login works immediately.
	token := ts.login(t, "citymanager", "secure123")
	assert.NotEmpty(t, token)
}

func TestProjectHandler_RegisterProject_DuplicateUsername(t *testing.T) {
	ts := setupBFFTestSuite(t, 30*time.Minute)

	require.Equal(t, http.StatusCreated, ts.registerProject(t, "citymanager", "First").Code)

	w := ts.registerProject(t, "citymanager", "Second")
	assert.Equal(t, http.StatusConflict, w.Code)

	var respBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "Username already registered", respBody["error"])
}

func TestProjectHandler_RegisterProject_DuplicateProjectName(t *testing.T) {
	ts := setupBFFTestSuite(t, 30*time.Minute)

	require.Equal(t, http.StatusCreated, ts.registerProject(t, "first", "City Center Lights").Code)

	w := ts.registerProject(t, "second", "City Center Lights")
	assert.Equal(t, http.StatusConflict, w.Code)

	var respBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "Project name already exists", respBody["error"])
}

func TestProjectHandler_ListProjects_RequiresAuth(t *testing.T) {
	ts := setupBFFTestSuite(t, 30*time.Minute)
	require.Equal(t, http.StatusCreated, ts.registerProject(t, "citymanager", "City Center Lights").Code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/projects", nil)
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := ts.login(t, "citymanager", "secure123")
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "City Center Lights", projects[0].Name)
}
