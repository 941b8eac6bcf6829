package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, pin *string) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByPin(ctx context.Context, pin string) (*domain.User, error)
	UpdatePin(ctx context.Context, userID int64, pin string) error
	RemovePin(ctx context.Context, userID int64) error
}

type AuthService interface {
	Register(ctx context.Context, pin *string) (int64, error)
	Login(ctx context.Context, pin string) (*domain.User, error)
}
