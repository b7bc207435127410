package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/creatorpro/backend/internal/auth/domain"
)

// UserStore is the subset of the user repository the service needs.
type UserStore interface {
	Create(ctx context.Context, u domain.NewUser) (*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int, patch domain.ProfilePatch) (*domain.User, error)
}

// AuthService handles credential registration and verification.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// RegisterInput carries the profile fields accepted at registration.
type RegisterInput struct {
	Username string
	Password string
	FullName *string
	Email    *string
}

// Register hashes the password and persists the user. Returns
// domain.ErrUsernameTaken when the username is already in use.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.NewUser{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Email:        in.Email,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password against the stored bcrypt hash. A missing
// user and a wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser resolves the session-bound user id to its row.
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile update for the user.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, patch domain.ProfilePatch) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, patch)
}
