package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

type mockAPISpecRepository struct {
	mock.Mock
}

func (m *mockAPISpecRepository) List(ctx context.Context) ([]*models.APISpec, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.APISpec), args.Error(1)
}

func (m *mockAPISpecRepository) FindByID(ctx context.Context, id int64) (*models.APISpec, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APISpec), args.Error(1)
}

func (m *mockAPISpecRepository) Create(ctx context.Context, spec *models.APISpec) error {
	args := m.Called(ctx, spec)
	return args.Error(0)
}

func (m *mockAPISpecRepository) Update(ctx context.Context, spec *models.APISpec) error {
	args := m.Called(ctx, spec)
	return args.Error(0)
}

func (m *mockAPISpecRepository) Archive(ctx context.Context, id int64, archivedAt time.Time) error {
	args := m.Called(ctx, id, archivedAt)
	return args.Error(0)
}

func TestAPISpecService_CreateSpec_StringContentWrapped(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.APISpec) bool {
		return s.SpecContent == `{"content":"plain text spec"}`
	})).Return(nil).Once()

	resp, err := svc.CreateSpec(context.Background(), models.CreateAPISpecRequest{
		ProjectID:   1,
		Version:     "1.0.0",
		Title:       "Orders API",
		SpecContent: "plain text spec",
	})
	require.NoError(t, err)

	// The stored wrapper is unwrapped again in the response.
	assert.Equal(t, "plain text spec", resp.SpecContent)

	repo.AssertExpectations(t)
}

func TestAPISpecService_CreateSpec_StructuredContentStoredDirect(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.APISpec) bool {
		return s.SpecContent == `{"openapi":"3.0.0"}`
	})).Return(nil).Once()

	resp, err := svc.CreateSpec(context.Background(), models.CreateAPISpecRequest{
		ProjectID:   1,
		Version:     "1.0.0",
		Title:       "Orders API",
		SpecContent: map[string]any{"openapi": "3.0.0"},
	})
	require.NoError(t, err)

	content, ok := resp.SpecContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3.0.0", content["openapi"])

	repo.AssertExpectations(t)
}

func TestAPISpecService_GetSpec_DecodesStoredDocument(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	stored := &models.APISpec{
		ID:          2,
		ProjectID:   1,
		Version:     "1.0.0",
		Title:       "Orders API",
		SpecContent: `{"content":"yaml: spec"}`,
	}
	repo.On("FindByID", mock.Anything, int64(2)).Return(stored, nil).Once()

	resp, err := svc.GetSpec(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "yaml: spec", resp.SpecContent)

	repo.AssertExpectations(t)
}

func TestAPISpecService_UpdateSpec_ContentReencoded(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	stored := &models.APISpec{
		ID:          2,
		ProjectID:   1,
		Version:     "1.0.0",
		Title:       "Orders API",
		SpecContent: `{"content":"old"}`,
	}
	repo.On("FindByID", mock.Anything, int64(2)).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *models.APISpec) bool {
		return s.SpecContent == `{"paths":{}}` && s.Version == "1.0.0"
	})).Return(nil).Once()

	resp, err := svc.UpdateSpec(context.Background(), 2, models.UpdateAPISpecRequest{
		SpecContent: map[string]any{"paths": map[string]any{}},
	})
	require.NoError(t, err)

	_, ok := resp.SpecContent.(map[string]any)
	assert.True(t, ok)

	repo.AssertExpectations(t)
}

func TestAPISpecService_UpdateSpec_NilContentKeepsStored(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	stored := &models.APISpec{
		ID:          2,
		Version:     "1.0.0",
		SpecContent: `{"content":"kept"}`,
	}
	repo.On("FindByID", mock.Anything, int64(2)).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *models.APISpec) bool {
		return s.SpecContent == `{"content":"kept"}` && s.Version == "2.0.0"
	})).Return(nil).Once()

	newVersion := "2.0.0"
	resp, err := svc.UpdateSpec(context.Background(), 2, models.UpdateAPISpecRequest{Version: &newVersion})
	require.NoError(t, err)
	assert.Equal(t, "kept", resp.SpecContent)

	repo.AssertExpectations(t)
}

func TestAPISpecService_DeleteSpec_Archives(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	repo.On("Archive", mock.Anything, int64(2), mock.AnythingOfType("time.Time")).Return(nil).Once()

	require.NoError(t, svc.DeleteSpec(context.Background(), 2))
	repo.AssertExpectations(t)
}

func TestAPISpecService_GetSpec_NotFound(t *testing.T) {
	repo := new(mockAPISpecRepository)
	svc := NewAPISpecService(repo, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(404)).
		Return(nil, domainErrors.ErrSpecNotFound).Once()

	_, err := svc.GetSpec(context.Background(), 404)
	assert.ErrorIs(t, err, domainErrors.ErrSpecNotFound)

	repo.AssertExpectations(t)
}
