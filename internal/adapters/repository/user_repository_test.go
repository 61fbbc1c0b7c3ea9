package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/tests/testutil"
)

func newTestUser(username string) *entities.User {
	return &entities.User{
		ID:           uuid.New(),
		Name:         "Jane Doe",
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("janedoe")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Username != "janedoe" || byID.Name != "Jane Doe" {
		t.Errorf("GetByID() = %+v, want stored user", byID)
	}

	byUsername, err := repo.GetByUsername(ctx, "janedoe")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if byUsername.ID != user.ID {
		t.Errorf("GetByUsername() id = %s, want %s", byUsername.ID, user.ID)
	}
	if byUsername.PasswordHash != user.PasswordHash {
		t.Errorf("GetByUsername() hash mismatch")
	}
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestUser("janedoe")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Create(ctx, newTestUser("janedoe"))
	if !errors.Is(err, entities.ErrDuplicateUsername) {
		t.Errorf("Create(duplicate) error = %v, want ErrDuplicateUsername", err)
	}
}

func TestUserRepositoryNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrUserNotFound", err)
	}
}
