package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"weather-be/internal/entities"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

// ErrUserNotFound reports that no row matched the lookup. It is distinct
// from infrastructure failures so callers can tell "confirmed absent" apart
// from "the lookup itself broke".
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists reports a unique-constraint conflict on insert.
var ErrUserExists = errors.New("user already exists")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(user *entities.User) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByAPIKey(apiKey string) (*entities.User, error)
	DeleteByAPIKey(apiKey string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database. A duplicate username or API
// key trips the table's unique constraints and is reported as ErrUserExists,
// which also covers registrations racing past the existence pre-check.
func (r *userRepository) Create(user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (username, api_key, terms_and_conditions, email, full_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, api_key, terms_and_conditions, email, full_name, created_at
	`

	var created entities.User
	err := r.db.QueryRow(query,
		user.Username,
		user.APIKey,
		user.TermsAndConditions,
		user.Email,
		user.FullName,
	).Scan(
		&created.ID,
		&created.Username,
		&created.APIKey,
		&created.TermsAndConditions,
		&created.Email,
		&created.FullName,
		&created.CreatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(username string) (*entities.User, error) {
	return r.findOne("username", username)
}

// FindByAPIKey finds a user by API key
func (r *userRepository) FindByAPIKey(apiKey string) (*entities.User, error) {
	return r.findOne("api_key", apiKey)
}

func (r *userRepository) findOne(column, value string) (*entities.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, api_key, terms_and_conditions, email, full_name, created_at
		FROM users
		WHERE %s = $1
	`, column)

	var user entities.User
	err := r.db.QueryRow(query, value).Scan(
		&user.ID,
		&user.Username,
		&user.APIKey,
		&user.TermsAndConditions,
		&user.Email,
		&user.FullName,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// DeleteByAPIKey removes the user holding the given API key. Deleting a key
// that matches nothing is not an error.
func (r *userRepository) DeleteByAPIKey(apiKey string) error {
	query := `DELETE FROM users WHERE api_key = $1`

	if _, err := r.db.Exec(query, apiKey); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
