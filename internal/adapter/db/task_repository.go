package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const taskColumns = `id, userId, title, notes, category, dueDate, dueTime, createdAt, completed, priority, reminderTime`

// NULLs sort first ascending, so undated tasks trail dated ones only by
// the priority tiebreak; the enum index makes DESC read High first.
const listTasksByUserQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE userId = ?
ORDER BY dueDate ASC, dueTime ASC, priority DESC`

const findTaskByIDQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ?`

const insertTaskQuery = `
INSERT INTO tasks (userId, title, notes, category, dueDate, dueTime, priority, reminderTime, completed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           int64          `db:"id"`
	UserID       int64          `db:"userId"`
	Title        string         `db:"title"`
	Notes        sql.NullString `db:"notes"`
	Category     sql.NullString `db:"category"`
	DueDate      sql.NullTime   `db:"dueDate"`
	DueTime      sql.NullString `db:"dueTime"`
	CreatedAt    sql.NullTime   `db:"createdAt"`
	Completed    bool           `db:"completed"`
	Priority     sql.NullString `db:"priority"`
	ReminderTime sql.NullTime   `db:"reminderTime"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindAllByUserID(ctx context.Context, userID int64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByUserQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}

	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task := mapTaskRow(row)
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		input.UserID,
		input.Title,
		input.Notes,
		input.Category,
		input.DueDate,
		input.DueTime,
		input.Priority,
		input.ReminderTime,
		input.Completed,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update writes only the columns the patch marks as set. The affected
// row count is not inspected: the caller has already confirmed the task
// exists, and MySQL reports zero rows for a value-identical update.
func (r *TaskRepository) Update(ctx context.Context, taskID int64, patch domain.TaskPatch) error {
	if patch.Empty() {
		return domain.ErrNothingToUpdate
	}

	builder := squirrel.Update("tasks")
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.NotesSet {
		builder = builder.Set("notes", patch.Notes)
	}
	if patch.CategorySet {
		builder = builder.Set("category", patch.Category)
	}
	if patch.DueDateSet {
		builder = builder.Set("dueDate", patch.DueDate)
	}
	if patch.DueTimeSet {
		builder = builder.Set("dueTime", patch.DueTime)
	}
	if patch.PrioritySet {
		builder = builder.Set("priority", patch.Priority)
	}
	if patch.ReminderTimeSet {
		builder = builder.Set("reminderTime", patch.ReminderTime)
	}
	if patch.Completed != nil {
		builder = builder.Set("completed", *patch.Completed)
	}

	query, args, err := builder.Where(squirrel.Eq{"id": taskID}).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, taskID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Completed: row.Completed,
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}
	if row.Category.Valid {
		value := row.Category.String
		task.Category = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.DueTime.Valid {
		value := row.DueTime.String
		task.DueTime = &value
	}
	if row.Priority.Valid {
		value := domain.TaskPriority(row.Priority.String)
		task.Priority = &value
	}
	if row.ReminderTime.Valid {
		value := row.ReminderTime.Time
		task.ReminderTime = &value
	}
	if row.CreatedAt.Valid {
		task.CreatedAt = row.CreatedAt.Time
	}

	return task
}
