package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"todolist/internal/config"
)

const (
	bootstrapAttempts = 5
	bootstrapDelay    = 2 * time.Second
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id INT AUTO_INCREMENT PRIMARY KEY,
  pin VARCHAR(4) NULL,
  createdAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
  id INT AUTO_INCREMENT PRIMARY KEY,
  userId INT NOT NULL,
  title VARCHAR(255) NOT NULL,
  notes TEXT NULL,
  category VARCHAR(100) NULL,
  dueDate DATE NULL,
  dueTime TIME NULL,
  createdAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  completed BOOLEAN DEFAULT FALSE,
  priority ENUM('Low', 'Medium', 'High') NULL,
  reminderTime DATETIME NULL,
  FOREIGN KEY (userId) REFERENCES users(id) ON DELETE CASCADE
)`

// BootstrapSchema creates the database and tables, retrying a few times
// before giving up. Failure is logged, never fatal: the server keeps
// serving and storage calls fail individually until the store is back.
func BootstrapSchema(ctx context.Context, conf *config.Config, database *sqlx.DB) {
	for attempt := 1; attempt <= bootstrapAttempts; attempt++ {
		err := initSchemaOnce(ctx, conf, database)
		if err == nil {
			zap.L().Info("database schema ready", zap.String("database", conf.DbName))
			return
		}

		zap.L().Warn("schema bootstrap attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", bootstrapAttempts),
			zap.Error(err),
		)

		if attempt == bootstrapAttempts {
			zap.L().Error("schema bootstrap gave up, continuing without it", zap.Error(err))
			return
		}

		select {
		case <-ctx.Done():
			zap.L().Warn("schema bootstrap canceled", zap.Error(ctx.Err()))
			return
		case <-time.After(bootstrapDelay):
		}
	}
}

func initSchemaOnce(ctx context.Context, conf *config.Config, database *sqlx.DB) error {
	ensureDatabase(ctx, conf)

	if err := InitSchema(ctx, database); err != nil {
		return err
	}

	return database.PingContext(ctx)
}

// InitSchema runs the table DDL against an already selected database.
// Also used by the integration suite to reset its scratch schema.
func InitSchema(ctx context.Context, database *sqlx.DB) error {
	for _, ddl := range []string{createUsersTable, createTasksTable} {
		if _, err := database.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

// ensureDatabase creates the configured database through a server-level
// connection. Managed databases often deny this; that is tolerated since
// the database already exists there.
func ensureDatabase(ctx context.Context, conf *config.Config) {
	// Cloud platforms sometimes hand over a full connection string in
	// place of a bare database name; nothing to create in that case.
	if strings.ContainsAny(conf.DbName, "?/") || strings.Contains(conf.DbName, "://") {
		return
	}

	admin, err := sqlx.Open("mysql", dsn(conf, ""))
	if err != nil {
		zap.L().Warn("could not open server-level connection", zap.Error(err))
		return
	}
	defer func() {
		if err := admin.Close(); err != nil {
			zap.L().Debug("failed to close server-level connection", zap.Error(err))
		}
	}()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", conf.DbName)
	if _, err := admin.ExecContext(ctx, stmt); err != nil {
		zap.L().Warn("could not create database, assuming it exists",
			zap.String("database", conf.DbName),
			zap.Error(err),
		)
	}
}
