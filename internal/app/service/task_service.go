package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	now   func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users, now: time.Now}
}

func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.tasks.FindAllByUserID(ctx, userID)
}

// Create verifies the owner exists before writing, then returns the
// freshly stored row so the response reflects column defaults.
func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return domain.Task{}, err
	}

	taskID, err := s.tasks.Create(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}

	return s.refetch(ctx, taskID, "create")
}

func (s *TaskService) Update(ctx context.Context, taskID int64, input domain.UpdateTaskInput) (domain.Task, error) {
	existing, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.UserID != nil && existing.UserID != *input.UserID {
		return domain.Task{}, domain.ErrTaskAccessDenied
	}

	patch := domain.TaskPatch{
		Title:       input.Title,
		Notes:       input.Notes,
		NotesSet:    input.NotesSet,
		Category:    input.Category,
		CategorySet: input.CategorySet,
		DueDate:     input.DueDate,
		DueDateSet:  input.DueDateSet,
		DueTime:     input.DueTime,
		DueTimeSet:  input.DueTimeSet,
		Priority:    input.Priority,
		PrioritySet: input.PrioritySet,
		Completed:   input.Completed,
	}

	if input.ReminderSet {
		// Recompose against the stored reminder so a time-only update
		// keeps its date; both parts empty clears the column.
		patch.ReminderTimeSet = true
		patch.ReminderTime = domain.ComposeReminder(
			input.ReminderDate,
			input.ReminderTime,
			existing.ReminderTime,
			s.now(),
		)
	}

	if patch.Empty() {
		return domain.Task{}, domain.ErrNothingToUpdate
	}

	if err := s.tasks.Update(ctx, taskID, patch); err != nil {
		return domain.Task{}, err
	}

	return s.refetch(ctx, taskID, "update")
}

// Delete applies the ownership check only when a userID accompanies the
// call; without one the check is skipped, matching the API's documented
// backward-compatible stance.
func (s *TaskService) Delete(ctx context.Context, taskID int64, userID *int64) error {
	if userID != nil {
		existing, err := s.tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if existing.UserID != *userID {
			return domain.ErrTaskAccessDenied
		}
	}

	deleted, err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}
	return nil
}

// refetch reads a task straight after a write. A miss here is a
// storage fault, not a not-found: the row vanished between statements.
func (s *TaskService) refetch(ctx context.Context, taskID int64, op string) (domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.Task{}, fmt.Errorf("task %d missing after %s", taskID, op)
		}
		return domain.Task{}, err
	}
	return *task, nil
}
