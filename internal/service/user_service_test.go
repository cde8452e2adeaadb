package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"weather-be/internal/entities"
	"weather-be/internal/models"
	"weather-be/internal/repository"
	"weather-be/internal/repository/mocks"
	"weather-be/internal/service"
)

func TestRegister_TermsNotAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	// No repository calls expected: nothing may be persisted
	_, err := svc.Register(&models.CreateUserRequest{
		Username:           "alice",
		TermsAndConditions: false,
	})

	assert.ErrorIs(t, err, service.ErrTermsNotAccepted)
}

func TestRegister_UsernameAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	repo.EXPECT().FindByUsername("alice").Return(&entities.User{
		Username: "alice",
		APIKey:   "existing-key",
	}, nil)

	_, err := svc.Register(&models.CreateUserRequest{
		Username:           "alice",
		TermsAndConditions: true,
	})

	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestRegister_NewUserGetsUUIDAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	repo.EXPECT().FindByUsername("alice").Return(nil, repository.ErrUserNotFound)
	repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *entities.User) (*entities.User, error) {
		assert.Equal(t, "alice", u.Username)
		assert.True(t, u.TermsAndConditions)
		assert.NotEmpty(t, u.APIKey)
		return u, nil
	})

	apiKey, err := svc.Register(&models.CreateUserRequest{
		Username:           "alice",
		TermsAndConditions: true,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(apiKey)
	assert.NoError(t, err, "API key should be a valid UUID")
}

func TestRegister_ConstraintConflictMapsToUserExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	// The existence pre-check passes but a concurrent registration wins the
	// insert; the unique-constraint error surfaces as the same duplicate error.
	repo.EXPECT().FindByUsername("alice").Return(nil, repository.ErrUserNotFound)
	repo.EXPECT().Create(gomock.Any()).Return(nil, repository.ErrUserExists)

	_, err := svc.Register(&models.CreateUserRequest{
		Username:           "alice",
		TermsAndConditions: true,
	})

	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestRegister_LookupFaultPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	repo.EXPECT().FindByUsername("alice").Return(nil, errors.New("connection refused"))

	_, err := svc.Register(&models.CreateUserRequest{
		Username:           "alice",
		TermsAndConditions: true,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrUserExists)
}

func TestGetByUsername_AbsentAndFailedAreDistinct(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	repo.EXPECT().FindByUsername("ghost").Return(nil, repository.ErrUserNotFound)
	user, err := svc.GetByUsername("ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)

	infraErr := errors.New("connection refused")
	repo.EXPECT().FindByUsername("alice").Return(nil, infraErr)
	user, err = svc.GetByUsername("alice")
	assert.ErrorIs(t, err, infraErr)
	assert.Nil(t, user)
}

func TestGetByAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	alice := &entities.User{Username: "alice", APIKey: "key-1"}
	repo.EXPECT().FindByAPIKey("key-1").Return(alice, nil)
	user, err := svc.GetByAPIKey("key-1")
	require.NoError(t, err)
	assert.Equal(t, alice, user)

	repo.EXPECT().FindByAPIKey("nope").Return(nil, repository.ErrUserNotFound)
	user, err = svc.GetByAPIKey("nope")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestDelete_FaultPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo)

	repo.EXPECT().DeleteByAPIKey("key-1").Return(nil)
	assert.NoError(t, svc.Delete("key-1"))

	deleteErr := errors.New("connection refused")
	repo.EXPECT().DeleteByAPIKey("key-1").Return(deleteErr)
	assert.ErrorIs(t, svc.Delete("key-1"), deleteErr)
}
