package policy

import (
	"errors"
	"testing"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
)

func TestOwnerOrAdmin(t *testing.T) {
	owner := Principal{UserID: 1, Role: model.RoleUser}
	other := Principal{UserID: 2, Role: model.RoleUser}
	admin := Principal{UserID: 3, Role: model.RoleAdmin}

	if err := OwnerOrAdmin(owner, 1); err != nil {
		t.Fatalf("owner must pass: %v", err)
	}
	if err := OwnerOrAdmin(admin, 1); err != nil {
		t.Fatalf("admin must pass: %v", err)
	}
	if err := OwnerOrAdmin(other, 1); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwnerOnly(t *testing.T) {
	owner := Principal{UserID: 1, Role: model.RoleUser}
	other := Principal{UserID: 2, Role: model.RoleUser}
	admin := Principal{UserID: 3, Role: model.RoleAdmin}

	if err := OwnerOnly(owner, 1); err != nil {
		t.Fatalf("owner must pass: %v", err)
	}
	if err := OwnerOnly(other, 1); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := OwnerOnly(admin, 1); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("the admin role grants no bypass, got %v", err)
	}
}

func TestCanAttemptQuiz(t *testing.T) {
	user := Principal{UserID: 1, Role: model.RoleUser}
	admin := Principal{UserID: 2, Role: model.RoleAdmin}

	for _, vt := range []model.ViewType{model.ViewPublic, model.ViewUnlisted} {
		if err := CanAttemptQuiz(user, vt); err != nil {
			t.Fatalf("%s must be open to any principal: %v", vt, err)
		}
	}

	if err := CanAttemptQuiz(user, model.ViewPrivate); !errors.Is(err, util.ErrQuizPrivate) {
		t.Fatalf("expected ErrQuizPrivate, got %v", err)
	}
	if err := CanAttemptQuiz(admin, model.ViewPrivate); err != nil {
		t.Fatalf("admin must pass on private: %v", err)
	}
}

func TestClassScoped(t *testing.T) {
	user := Principal{UserID: 1, Role: model.RoleUser}
	admin := Principal{UserID: 2, Role: model.RoleAdmin}

	if err := ClassScoped(user, true); err != nil {
		t.Fatalf("member must pass: %v", err)
	}
	if err := ClassScoped(user, false); !errors.Is(err, util.ErrNotInClass) {
		t.Fatalf("expected ErrNotInClass, got %v", err)
	}
	if err := ClassScoped(admin, false); err != nil {
		t.Fatalf("admin must pass without membership: %v", err)
	}
}
