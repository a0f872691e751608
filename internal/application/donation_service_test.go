package application

import (
	"context"
	"errors"
	"testing"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	repo "github.com/savelife-bd/savelife-server/internal/domain/repository"
)

type mockDonationRepo struct {
	CreateFunc       func(ctx context.Context, d *entity.DonationRequest) error
	FindByIDFunc     func(ctx context.Context, id string) (*entity.DonationRequest, error)
	FindFunc         func(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error)
	CountFunc        func(ctx context.Context, f repo.DonationFilter) (int64, error)
	UpdateStatusFunc func(ctx context.Context, id string, status entity.DonationStatus) error
}

func (m *mockDonationRepo) Create(ctx context.Context, d *entity.DonationRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDonationRepo) FindByID(ctx context.Context, id string) (*entity.DonationRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockDonationRepo) Find(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, f, p)
	}
	return nil, nil
}

func (m *mockDonationRepo) Count(ctx context.Context, f repo.DonationFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, f)
	}
	return 0, nil
}

func (m *mockDonationRepo) UpdateStatus(ctx context.Context, id string, status entity.DonationStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

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

func userWithRole(email string, role entity.Role) *entity.UserProfile {
	return &entity.UserProfile{Email: email, Role: role, Status: entity.StatusActive}
}

func TestCreateSetsOwnerAndPendingStatus(t *testing.T) {
	donations := &mockDonationRepo{}
	svc := NewDonationService(donations, &mockUserRepo{}, nil)

	d, err := svc.Create(context.Background(), "a@x.com", CreateDonationInput{
		RequesterName: "A", RecipientName: "B", DistrictName: "Dhaka", BloodGroup: "O+", DonationDate: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.RequesterEmail != "a@x.com" {
		t.Errorf("requester email = %q, want a@x.com", d.RequesterEmail)
	}
	if d.DonationStatus != entity.DonationPending {
		t.Errorf("status = %q, want Pending", d.DonationStatus)
	}
}

func TestAllRequestsNarrowsDonorToOwnRequests(t *testing.T) {
	var gotFind, gotCount repo.DonationFilter
	donations := &mockDonationRepo{
		FindFunc: func(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error) {
			gotFind = f
			return []entity.DonationRequest{}, nil
		},
		CountFunc: func(ctx context.Context, f repo.DonationFilter) (int64, error) {
			gotCount = f
			return 0, nil
		},
	}
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.UserProfile, error) {
			return userWithRole(email, entity.RoleDonor), nil
		},
	}
	svc := NewDonationService(donations, users, nil)

	if _, err := svc.AllRequests(context.Background(), "donor@x.com", "Pending", 10, 0); err != nil {
		t.Fatalf("AllRequests: %v", err)
	}
	if gotFind.RequesterEmail != "donor@x.com" {
		t.Errorf("donor filter not narrowed: %+v", gotFind)
	}
	if gotFind.Status != entity.DonationPending {
		t.Errorf("status filter = %q, want Pending", gotFind.Status)
	}
	// Count must run against the identical filter as the page query.
	if gotCount != gotFind {
		t.Errorf("count filter %+v diverges from page filter %+v", gotCount, gotFind)
	}
}

func TestAllRequestsAdminSeesEverything(t *testing.T) {
	var got repo.DonationFilter
	donations := &mockDonationRepo{
		FindFunc: func(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error) {
			got = f
			return nil, nil
		},
	}
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.UserProfile, error) {
			return userWithRole(email, entity.RoleAdmin), nil
		},
	}
	svc := NewDonationService(donations, users, nil)

	if _, err := svc.AllRequests(context.Background(), "admin@x.com", "", 10, 0); err != nil {
		t.Fatalf("AllRequests: %v", err)
	}
	if got.RequesterEmail != "" {
		t.Errorf("admin filter narrowed unexpectedly: %+v", got)
	}
}

func TestAllRequestsRejectsUnknownStatus(t *testing.T) {
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.UserProfile, error) {
			return userWithRole(email, entity.RoleAdmin), nil
		},
	}
	svc := NewDonationService(&mockDonationRepo{}, users, nil)

	_, err := svc.AllRequests(context.Background(), "admin@x.com", "pending", 10, 0)
	if !errors.Is(err, entity.ErrInvalidDonationStatus) {
		t.Fatalf("err = %v, want ErrInvalidDonationStatus", err)
	}
}

func TestMyRequestsPaginationAndTotal(t *testing.T) {
	var gotPage repo.PageOpts
	donations := &mockDonationRepo{
		FindFunc: func(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error) {
			gotPage = p
			return make([]entity.DonationRequest, 5), nil
		},
		CountFunc: func(ctx context.Context, f repo.DonationFilter) (int64, error) {
			return 42, nil
		},
	}
	svc := NewDonationService(donations, &mockUserRepo{}, nil)

	res, err := svc.MyRequests(context.Background(), "a@x.com", 5, 3)
	if err != nil {
		t.Fatalf("MyRequests: %v", err)
	}
	if gotPage.Size != 5 || gotPage.Page != 3 {
		t.Errorf("page opts = %+v, want size 5 page 3", gotPage)
	}
	if !gotPage.SortDesc || gotPage.SortBy != "createdAt" {
		t.Errorf("sort = %+v, want createdAt desc", gotPage)
	}
	if res.TotalRequest != 42 {
		t.Errorf("totalRequest = %d, want 42", res.TotalRequest)
	}
}

func TestSearchOmitsAbsentCriteria(t *testing.T) {
	var got repo.DonationFilter
	donations := &mockDonationRepo{
		FindFunc: func(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error) {
			got = f
			return nil, nil
		},
	}
	svc := NewDonationService(donations, &mockUserRepo{}, nil)

	if _, err := svc.Search(context.Background(), "O+", "Dhaka", ""); err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := repo.DonationFilter{BloodGroup: "O+", District: "Dhaka"}
	if got != want {
		t.Errorf("filter = %+v, want %+v", got, want)
	}

	if _, err := svc.Search(context.Background(), "", "", ""); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got != (repo.DonationFilter{}) {
		t.Errorf("empty search built a non-empty filter: %+v", got)
	}
}

func TestRecentRequestsLimitsToThree(t *testing.T) {
	var gotPage repo.PageOpts
	donations := &mockDonationRepo{
		FindFunc: func(ctx context.Context, f repo.DonationFilter, p repo.PageOpts) ([]entity.DonationRequest, error) {
			gotPage = p
			return nil, nil
		},
	}
	svc := NewDonationService(donations, &mockUserRepo{}, nil)

	if _, err := svc.RecentRequests(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("RecentRequests: %v", err)
	}
	if gotPage.Size != 3 || gotPage.SortBy != "createdAt" || !gotPage.SortDesc {
		t.Errorf("page opts = %+v, want latest 3 by createdAt desc", gotPage)
	}
}

func TestConfirmStatusRejectsUnknownValue(t *testing.T) {
	svc := NewDonationService(&mockDonationRepo{}, &mockUserRepo{}, nil)
	err := svc.ConfirmStatus(context.Background(), "64f000000000000000000000", "done")
	if !errors.Is(err, entity.ErrInvalidDonationStatus) {
		t.Fatalf("err = %v, want ErrInvalidDonationStatus", err)
	}
}
