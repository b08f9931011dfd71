package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/schooldevops/openapi-hub/internal/domain/errors"
	"github.com/schooldevops/openapi-hub/internal/domain/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubHasher struct {
	hashErr error
}

func (s *stubHasher) HashPassword(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}
	return "hashed:" + password, nil
}

func (s *stubHasher) CheckPasswordHash(password, hash string) (bool, error) {
	return "hashed:"+password == hash, nil
}

func TestUserService_CreateUser_Success(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	repo.On("FindByEmail", mock.Anything, "new@example.com").
		Return(nil, domainErrors.ErrUserNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" &&
			u.PasswordHash == "hashed:secret" &&
			!u.CreatedAt.IsZero() &&
			u.CreatedAt.Equal(u.UpdatedAt)
	})).Return(nil).Once()

	user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Email:    "new@example.com",
		FullName: "New User",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "New User", user.FullName)
	assert.Equal(t, "hashed:secret", user.PasswordHash)

	repo.AssertExpectations(t)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	existing := &models.User{ID: 1, Email: "taken@example.com"}
	repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil).Once()

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Email:    "taken@example.com",
		FullName: "Someone",
		Password: "secret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainErrors.ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	repo.AssertExpectations(t)
}

func TestUserService_CreateUser_UniquenessCheckFailure(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	repo.On("FindByEmail", mock.Anything, "any@example.com").
		Return(nil, errors.New("connection reset")).Once()

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Email:    "any@example.com",
		FullName: "Any",
		Password: "secret",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainErrors.ErrEmailExists)

	repo.AssertExpectations(t)
}

func TestUserService_UpdateUser_PartialFieldsRetained(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	stored := &models.User{
		ID:           5,
		Email:        "old@example.com",
		FullName:     "Old Name",
		PasswordHash: "hashed:old",
	}
	repo.On("FindByID", mock.Anything, int64(5)).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	newEmail := "new@example.com"
	user, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Email: &newEmail})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "Old Name", user.FullName)
	assert.Equal(t, "hashed:old", user.PasswordHash)
	assert.False(t, user.UpdatedAt.IsZero())

	repo.AssertExpectations(t)
}

func TestUserService_UpdateUser_PasswordRehashed(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	stored := &models.User{ID: 5, Email: "u@example.com", PasswordHash: "hashed:old"}
	repo.On("FindByID", mock.Anything, int64(5)).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	newPassword := "newsecret"
	user, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "hashed:newsecret", user.PasswordHash)

	repo.AssertExpectations(t)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, domainErrors.ErrUserNotFound).Once()

	_, err := svc.UpdateUser(context.Background(), 99, models.UpdateUserRequest{})
	assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)

	repo.AssertExpectations(t)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &stubHasher{}, zap.NewNop())

	repo.On("Delete", mock.Anything, int64(99)).Return(domainErrors.ErrUserNotFound).Once()

	err := svc.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)

	repo.AssertExpectations(t)
}
