package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const (
	insertUserQuery = `INSERT INTO users (pin) VALUES (?)`

	findUserByIDQuery = `SELECT id, pin, createdAt FROM users WHERE id = ?`

	// The pin column is not unique; the lowest id wins on ties so the
	// "first match" is at least deterministic.
	findUserByPinQuery = `SELECT id, pin, createdAt FROM users WHERE pin = ? ORDER BY id LIMIT 1`

	updateUserPinQuery = `UPDATE users SET pin = ? WHERE id = ?`
	removeUserPinQuery = `UPDATE users SET pin = NULL WHERE id = ?`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        int64          `db:"id"`
	Pin       sql.NullString `db:"pin"`
	CreatedAt time.Time      `db:"createdAt"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, pin *string) (int64, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, pin)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user := mapUserRow(row)
	return &user, nil
}

func (r *UserRepository) FindByPin(ctx context.Context, pin string) (*domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByPinQuery, pin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user := mapUserRow(row)
	return &user, nil
}

func (r *UserRepository) UpdatePin(ctx context.Context, userID int64, pin string) error {
	return r.execPinUpdate(ctx, updateUserPinQuery, pin, userID)
}

func (r *UserRepository) RemovePin(ctx context.Context, userID int64) error {
	return r.execPinUpdate(ctx, removeUserPinQuery, userID)
}

// execPinUpdate ignores the affected-row count on purpose: MySQL
// reports zero rows both for a missing user and for an unchanged pin,
// so the count cannot distinguish not-found from an idempotent write.
func (r *UserRepository) execPinUpdate(ctx context.Context, query string, args ...any) error {
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
	}
	if row.Pin.Valid {
		value := row.Pin.String
		user.Pin = &value
	}
	return user
}
