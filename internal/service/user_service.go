package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"weather-be/internal/entities"
	"weather-be/internal/models"
	"weather-be/internal/repository"
)

//go:generate mockgen -source=user_service.go -destination=mocks/mock_user_service.go -package=mocks

// ErrTermsNotAccepted reports a registration attempt without the terms and
// conditions flag set.
var ErrTermsNotAccepted = errors.New("terms and conditions not accepted")

// ErrUserExists reports a registration attempt for a username that is
// already taken.
var ErrUserExists = errors.New("user already exists")

// UserService defines the interface for user registration and lookup logic
type UserService interface {
	Register(req *models.CreateUserRequest) (string, error)
	GetByUsername(username string) (*entities.User, error)
	GetByAPIKey(apiKey string) (*entities.User, error)
	Delete(apiKey string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user and returns the generated API key. The key is
// a UUID v4, assigned exactly once; there is no rotation operation.
func (s *userService) Register(req *models.CreateUserRequest) (string, error) {
	if !req.TermsAndConditions {
		return "", ErrTermsNotAccepted
	}

	// Friendly existence check first; the unique constraint on the table is
	// the real guard against concurrent registrations of the same username.
	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return "", ErrUserExists
	}

	user := &entities.User{
		Username:           req.Username,
		APIKey:             uuid.NewString(),
		TermsAndConditions: req.TermsAndConditions,
		Email:              req.Email,
		FullName:           req.FullName,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("New user created %s", created.Username)
	return created.APIKey, nil
}

// GetByUsername looks up a user by username. A confirmed absence returns
// (nil, nil); a failed lookup returns the error so callers can tell the two
// apart.
func (s *userService) GetByUsername(username string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		log.Printf("Warning: lookup by username %s failed: %v", username, err)
		return nil, err
	}
	return user, nil
}

// GetByAPIKey looks up a user by API key, with the same absent-vs-failed
// contract as GetByUsername.
func (s *userService) GetByAPIKey(apiKey string) (*entities.User, error) {
	user, err := s.userRepo.FindByAPIKey(apiKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		log.Printf("Warning: lookup by API key failed: %v", err)
		return nil, err
	}
	return user, nil
}

// Delete removes the user holding the given API key unconditionally.
// Faults propagate to the caller.
func (s *userService) Delete(apiKey string) error {
	return s.userRepo.DeleteByAPIKey(apiKey)
}
