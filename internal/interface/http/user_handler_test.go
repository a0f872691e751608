package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/savelife-bd/savelife-server/internal/application"
	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	repo "github.com/savelife-bd/savelife-server/internal/domain/repository"
)

type mockUserRepo struct {
	CreateFunc        func(ctx context.Context, u *entity.UserProfile) error
	FindAllFunc       func(ctx context.Context) ([]entity.UserProfile, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*entity.UserProfile, error)
	UpdateProfileFunc func(ctx context.Context, email string, upd entity.ProfileUpdate) error
	UpdateStatusFunc  func(ctx context.Context, email string, status entity.UserStatus) error
	UpdateRoleFunc    func(ctx context.Context, email string, role entity.Role) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.UserProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]entity.UserProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, email string, upd entity.ProfileUpdate) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, email, upd)
	}
	return nil
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, email string, status entity.UserStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, email, status)
	}
	return nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, email string, role entity.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, email, role)
	}
	return nil
}

func userRouter(users repo.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewUserService(users, nil, "", nil)
	h := NewUserHandler(svc, nil)

	r := gin.New()
	r.POST("/users", h.Register)
	r.GET("/users/role/:email", h.GetByEmail)
	r.PATCH("/profile-update/:email", h.UpdateProfile)
	r.PATCH("/update/user/status", h.UpdateStatus)
	r.PATCH("/update/user/role", h.UpdateRole)
	return r
}

func patchJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAppliesServerDefaults(t *testing.T) {
	var created *entity.UserProfile
	r := userRouter(&mockUserRepo{
		CreateFunc: func(ctx context.Context, u *entity.UserProfile) error {
			created = u
			return nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"a@x.com","name":"A","bloodGroup":"O+"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if created == nil {
		t.Fatal("repo never invoked")
	}
	if created.Role != entity.RoleDonor || created.Status != entity.StatusActive {
		t.Errorf("defaults = %s/%s, want Donor/Active", created.Role, created.Status)
	}
}

func TestRegisterRequiresValidEmail(t *testing.T) {
	called := false
	r := userRouter(&mockUserRepo{
		CreateFunc: func(ctx context.Context, u *entity.UserProfile) error {
			called = true
			return nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"not-an-email","name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("repo invoked for an invalid payload")
	}
}

func TestUpdateProfileIgnoresUnknownFields(t *testing.T) {
	var got entity.ProfileUpdate
	r := userRouter(&mockUserRepo{
		UpdateProfileFunc: func(ctx context.Context, email string, upd entity.ProfileUpdate) error {
			got = upd
			return nil
		},
	})

	// role/status/email in the body must never reach the store.
	w := patchJSON(r, "/profile-update/a@x.com",
		`{"name":"B","district":"Dhaka","role":"Admin","status":"Blocked","email":"evil@x.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	want := entity.ProfileUpdate{Name: "B", District: "Dhaka"}
	if got != want {
		t.Errorf("update = %+v, want %+v", got, want)
	}
}

func TestUpdateStatusRequiresQueryParams(t *testing.T) {
	r := userRouter(&mockUserRepo{})

	w := patchJSON(r, "/update/user/status?email=a@x.com", ``)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing status: code = %d, want 400", w.Code)
	}

	w = patchJSON(r, "/update/user/status?status=Blocked", ``)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing email: code = %d, want 400", w.Code)
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	called := false
	r := userRouter(&mockUserRepo{
		UpdateRoleFunc: func(ctx context.Context, email string, role entity.Role) error {
			called = true
			return nil
		},
	})

	w := patchJSON(r, "/update/user/role?email=a@x.com&role=superuser", ``)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("repo invoked for an unknown role")
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestGetByEmailUnknownUser(t *testing.T) {
	r := userRouter(&mockUserRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/role/ghost@x.com", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
