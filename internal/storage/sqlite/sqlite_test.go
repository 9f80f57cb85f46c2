package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/BalanceBalls/worklog-report/internal/report"
	"github.com/BalanceBalls/worklog-report/internal/storage"
)

func newTestStorage(t *testing.T) *SqliteStorage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("could not open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Up(context.Background()); err != nil {
		t.Fatalf("could not create tables: %v", err)
	}

	return s
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	if s.UserExists(ctx, 42) {
		t.Fatal("user must not exist yet")
	}
	if _, err := s.User(ctx, 42); !errors.Is(err, storage.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user := report.User{Id: 42, Nickname: "alice", IsActive: true}
	if err := s.AddUser(ctx, user); err != nil {
		t.Fatalf("could not add user: %v", err)
	}
	if !s.UserExists(ctx, 42) {
		t.Fatal("user must exist after AddUser")
	}

	user.AccountId = "acc-alice"
	user.ApiKey = "a2V5"
	user.ProjectKey = "PROJ"
	if err := s.UpdateUser(ctx, user); err != nil {
		t.Fatalf("could not update user: %v", err)
	}

	got, err := s.User(ctx, 42)
	if err != nil {
		t.Fatalf("could not fetch user: %v", err)
	}
	if got != user {
		t.Errorf("unexpected user:\n got %#v\nwant %#v", got, user)
	}

	if err := s.RemoveUser(ctx, 42); err != nil {
		t.Fatalf("could not remove user: %v", err)
	}
	if s.UserExists(ctx, 42) {
		t.Fatal("user must be gone after RemoveUser")
	}
}

func TestAddUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	if err := s.AddUser(ctx, report.User{Id: 1}); err != nil {
		t.Fatalf("could not add user: %v", err)
	}
	if err := s.AddUser(ctx, report.User{Id: 1}); err == nil {
		t.Fatal("expected an error for a duplicate user")
	}
}
