package service

import (
	"context"
	"errors"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type AuthService struct {
	users ports.UserRepository
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user; pin may be nil for a PIN-less account.
func (s *AuthService) Register(ctx context.Context, pin *string) (int64, error) {
	return s.users.Create(ctx, pin)
}

// Login resolves a PIN to its user. A miss is an authentication
// failure, not a lookup error.
func (s *AuthService) Login(ctx context.Context, pin string) (*domain.User, error) {
	user, err := s.users.FindByPin(ctx, pin)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidPin
		}
		return nil, err
	}
	return user, nil
}
