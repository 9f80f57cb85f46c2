package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
	"github.com/BalanceBalls/worklog-report/internal/storage"
)

type SqliteStorage struct {
	db *sql.DB
}

func New(name string) (*SqliteStorage, error) {
	slog.Info("initializing DB...", "db_name", name)
	db, err := sql.Open("sqlite3", name)

	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not access database: %w", err)
	}

	return &SqliteStorage{db: db}, nil
}

func (s *SqliteStorage) Up(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("could not create table users: %w", err)
	}

	return nil
}

func (s *SqliteStorage) AddUser(ctx context.Context, user report.User) error {
	_, err := s.db.ExecContext(ctx, addUser,
		user.Id, user.Nickname, user.AccountId, user.ApiKey, user.ProjectKey, user.IsActive)
	if err != nil {
		return fmt.Errorf("could not add new user: %w", err)
	}

	return nil
}

func (s *SqliteStorage) UserExists(ctx context.Context, userId int64) bool {
	logger := logger.GetFromContext(ctx)

	var exists int
	err := s.db.QueryRowContext(ctx, checkUserExists, userId).Scan(&exists)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.ErrorContext(ctx, "user lookup failed", "error", err)
		}
		return false
	}

	return true
}

func (s *SqliteStorage) User(ctx context.Context, userId int64) (report.User, error) {
	user := report.User{}
	err := s.db.QueryRowContext(ctx, getUserById, userId).Scan(
		&user.Id, &user.Nickname, &user.AccountId, &user.ApiKey, &user.ProjectKey, &user.IsActive)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return report.User{}, storage.ErrUserNotFound
		}

		return report.User{}, fmt.Errorf("failed to fetch row: %w", err)
	}

	return user, nil
}

func (s *SqliteStorage) UpdateUser(ctx context.Context, user report.User) error {
	_, err := s.db.ExecContext(ctx, updateUser,
		user.Nickname, user.AccountId, user.ApiKey, user.ProjectKey, user.IsActive, user.Id)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}

	return nil
}

func (s *SqliteStorage) RemoveUser(ctx context.Context, userId int64) error {
	if _, err := s.db.ExecContext(ctx, removeUser, userId); err != nil {
		return fmt.Errorf("could not remove user: %w", err)
	}

	return nil
}

func (s *SqliteStorage) Close() error {
	return s.db.Close()
}
