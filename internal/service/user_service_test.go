package service

import (
	"testing"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
)

func validRegistration(username, email string) RegisterInput {
	return RegisterInput{
		Username:  username,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Birthday:  "1990-12-10",
		Password:  "Sup3rSecret!",
	}
}

func TestAdminCreateHonorsRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	admin, err := svc.Create(validRegistration("head_admin", "head@example.com"), model.RoleAdmin)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}

	stored, err := svc.Get(admin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Role != model.RoleAdmin {
		t.Fatalf("role not persisted, got %q", stored.Role)
	}
}

func TestAdminCreateDefaultsRoleToUser(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Create(validRegistration("plain_user", "plain@example.com"), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Fatalf("expected default user role, got %q", user.Role)
	}
}

func TestAdminCreateRejectsUnknownRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Create(validRegistration("stray", "stray@example.com"), "superuser")
	if !util.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}
