package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
	"github.com/BalanceBalls/worklog-report/internal/storage"
)

type PostgresStorage struct {
	db *sql.DB
}

func New(connectionString string) (*PostgresStorage, error) {
	slog.Info("initializing Postgres DB...")
	db, err := sql.Open("postgres", connectionString)

	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not access database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) Up(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("could not create table users: %w", err)
	}

	return nil
}

func (s *PostgresStorage) AddUser(ctx context.Context, user report.User) error {
	_, err := s.db.ExecContext(ctx, addUser,
		user.Id, user.Nickname, user.AccountId, user.ApiKey, user.ProjectKey, user.IsActive)
	if err != nil {
		return fmt.Errorf("could not add new user: %w", err)
	}

	return nil
}

func (s *PostgresStorage) UserExists(ctx context.Context, userId int64) bool {
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

func (s *PostgresStorage) User(ctx context.Context, userId int64) (report.User, error) {
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

func (s *PostgresStorage) UpdateUser(ctx context.Context, user report.User) error {
	_, err := s.db.ExecContext(ctx, updateUser,
		user.Nickname, user.AccountId, user.ApiKey, user.ProjectKey, user.IsActive, user.Id)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}

	return nil
}

func (s *PostgresStorage) RemoveUser(ctx context.Context, userId int64) error {
	if _, err := s.db.ExecContext(ctx, removeUser, userId); err != nil {
		return fmt.Errorf("could not remove user: %w", err)
	}

	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
