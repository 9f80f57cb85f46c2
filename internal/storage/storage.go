package storage

import (
	"context"
	"errors"

	"github.com/BalanceBalls/worklog-report/internal/report"
)

var ErrUserNotFound = errors.New("user not found")

// Storage keeps bot user profiles. Fetched worklogs are never stored.
type Storage interface {
	User(ctx context.Context, userId int64) (report.User, error)
	AddUser(ctx context.Context, user report.User) error
	UserExists(ctx context.Context, userId int64) bool
	UpdateUser(ctx context.Context, user report.User) error
	RemoveUser(ctx context.Context, userId int64) error
	Up(ctx context.Context) error
	Close() error
}
