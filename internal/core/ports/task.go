package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type TaskRepository interface {
	FindAllByUserID(ctx context.Context, userID int64) ([]domain.Task, error)
	FindByID(ctx context.Context, taskID int64) (*domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (int64, error)
	Update(ctx context.Context, taskID int64, patch domain.TaskPatch) error
	Delete(ctx context.Context, taskID int64) (bool, error)
}

type TaskService interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, taskID int64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, taskID int64, userID *int64) error
}
