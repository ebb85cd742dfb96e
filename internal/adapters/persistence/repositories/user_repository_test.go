package repositories

import (
	"context"
	"testing"

	"waqf-task-tracker/internal/adapters/persistence/models"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Username: "alice",
		Email:    "a@x.com",
		Password: "hashed",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected an id to be assigned")
	}

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if byEmail.Username != "alice" {
		t.Errorf("expected username %q, got %q", "alice", byEmail.Username)
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Email != "a@x.com" {
		t.Errorf("expected email %q, got %q", "a@x.com", byID.Email)
	}
}

func TestUserRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "bob", Email: "b@x.com", Password: "hashed"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.ExistsByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if !exists {
		t.Error("expected username to exist")
	}

	exists, err = repo.ExistsByEmail(ctx, "b@x.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}

	exists, err = repo.ExistsByEmail(ctx, "nobody@x.com")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if exists {
		t.Error("expected email not to exist")
	}
}
