package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lakefield/tasklist/internal/todo/domain"
	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/pkg/cryptox"
	"github.com/lakefield/tasklist/pkg/idx"
)

var (
	ErrMissingFields      = errors.New("missing_fields")
	ErrUserAlreadyExists  = errors.New("user_already_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type UserService struct {
	Store store.Store
}

// Register creates a new account. The password is hashed with argon2id
// before it touches the store; uniqueness of username and email is enforced
// by the store so concurrent registrations cannot race past a pre-check.
func (s *UserService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	if username == "" || email == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserAlreadyExists
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the email/password pair. Unknown emails and wrong
// passwords are deliberately the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
