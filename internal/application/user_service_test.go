package application

import (
	"context"
	"errors"
	"testing"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
)

func TestRegisterAssignsDefaults(t *testing.T) {
	var created *entity.UserProfile
	users := &mockUserRepo{
		CreateFunc: func(ctx context.Context, u *entity.UserProfile) error {
			created = u
			return nil
		},
	}
	svc := NewUserService(users, nil, "", nil)

	u, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Name: "A"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created == nil {
		t.Fatal("repo never invoked")
	}
	if u.Role != entity.RoleDonor {
		t.Errorf("role = %q, want Donor", u.Role)
	}
	if u.Status != entity.StatusActive {
		t.Errorf("status = %q, want Active", u.Status)
	}
}

func TestUpdateRoleRejectsNonCanonicalCasing(t *testing.T) {
	called := false
	users := &mockUserRepo{
		UpdateRoleFunc: func(ctx context.Context, email string, role entity.Role) error {
			called = true
			return nil
		},
	}
	svc := NewUserService(users, nil, "", nil)

	err := svc.UpdateRole(context.Background(), "a@x.com", "donor")
	if !errors.Is(err, entity.ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
	if called {
		t.Error("repo invoked for invalid role")
	}

	if err := svc.UpdateRole(context.Background(), "a@x.com", "Volunteer"); err != nil {
		t.Fatalf("canonical role rejected: %v", err)
	}
}

func TestUpdateStatusParsesClosedEnum(t *testing.T) {
	var got entity.UserStatus
	users := &mockUserRepo{
		UpdateStatusFunc: func(ctx context.Context, email string, status entity.UserStatus) error {
			got = status
			return nil
		},
	}
	svc := NewUserService(users, nil, "", nil)

	if err := svc.UpdateStatus(context.Background(), "a@x.com", "Blocked"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got != entity.StatusBlocked {
		t.Errorf("status = %q, want Blocked", got)
	}

	if err := svc.UpdateStatus(context.Background(), "a@x.com", "active"); !errors.Is(err, entity.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
