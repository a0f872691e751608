package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	repo "github.com/savelife-bd/savelife-server/internal/domain/repository"
)

// DonationService owns donation-request creation and the query views:
// requester-scoped, role-narrowed, pending, and public search.
type DonationService struct {
	Donations repo.DonationRepository
	Users     repo.UserRepository
	Logger    *logrus.Logger
}

func NewDonationService(d repo.DonationRepository, u repo.UserRepository, logger *logrus.Logger) *DonationService {
	return &DonationService{Donations: d, Users: u, Logger: logger}
}

type CreateDonationInput struct {
	RequesterName  string
	RecipientName  string
	DistrictName   string
	Upzila         string
	HospitalName   string
	FullAddress    string
	BloodGroup     string
	DonationDate   string
	DonationTime   string
	RequestMessage string
}

// Create inserts a request owned by the verified caller. The status always
// starts at Pending; createdAt is server-assigned.
func (s *DonationService) Create(ctx context.Context, requesterEmail string, in CreateDonationInput) (*entity.DonationRequest, error) {
	d := &entity.DonationRequest{
		RequesterName:  in.RequesterName,
		RequesterEmail: requesterEmail,
		RecipientName:  in.RecipientName,
		DistrictName:   in.DistrictName,
		Upzila:         in.Upzila,
		HospitalName:   in.HospitalName,
		FullAddress:    in.FullAddress,
		BloodGroup:     in.BloodGroup,
		DonationDate:   in.DonationDate,
		DonationTime:   in.DonationTime,
		RequestMessage: in.RequestMessage,
		DonationStatus: entity.DonationPending,
	}
	if err := s.Donations.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

type RequestPage struct {
	Requests     []entity.DonationRequest `json:"requests"`
	TotalRequest int64                    `json:"totalRequest"`
}

// MyRequests returns the caller's own requests, newest first, with the
// total computed from the same filter as the page.
func (s *DonationService) MyRequests(ctx context.Context, email string, size, page int) (*RequestPage, error) {
	f := repo.DonationFilter{RequesterEmail: email}
	return s.pageWithTotal(ctx, f, size, page)
}

// RecentRequests returns the caller's latest three requests.
func (s *DonationService) RecentRequests(ctx context.Context, email string) ([]entity.DonationRequest, error) {
	return s.Donations.Find(ctx, repo.DonationFilter{RequesterEmail: email},
		repo.PageOpts{Size: 3, SortBy: "createdAt", SortDesc: true})
}

// AllRequests is the role-scoped listing. When the caller's profile role is
// Donor the filter is forced to their own requests regardless of anything
// else supplied; Admin and Volunteer see everything. The optional status
// filter must parse against the closed enum.
func (s *DonationService) AllRequests(ctx context.Context, callerEmail, status string, size, page int) (*RequestPage, error) {
	caller, err := s.Users.FindByEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	f := repo.DonationFilter{}
	if caller.Role == entity.RoleDonor {
		f.RequesterEmail = callerEmail
	}
	if status != "" {
		st, err := entity.ParseDonationStatus(status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}
	return s.pageWithTotal(ctx, f, size, page)
}

// PendingRequests lists every Pending request ordered by donation date.
func (s *DonationService) PendingRequests(ctx context.Context) ([]entity.DonationRequest, error) {
	return s.Donations.Find(ctx, repo.DonationFilter{Status: entity.DonationPending},
		repo.PageOpts{SortBy: "donationDate"})
}

func (s *DonationService) Details(ctx context.Context, id string) (*entity.DonationRequest, error) {
	return s.Donations.FindByID(ctx, id)
}

// Search filters by the conjunction of whichever criteria are present.
// Absent criteria are omitted from the filter, not matched as empty.
func (s *DonationService) Search(ctx context.Context, bloodGroup, district, upzila string) ([]entity.DonationRequest, error) {
	f := repo.DonationFilter{BloodGroup: bloodGroup, District: district, Upzila: upzila}
	return s.Donations.Find(ctx, f, repo.PageOpts{})
}

// ConfirmStatus moves a request to a new status, typically by the donor
// taking it on or completing it.
func (s *DonationService) ConfirmStatus(ctx context.Context, id, status string) error {
	st, err := entity.ParseDonationStatus(status)
	if err != nil {
		return err
	}
	return s.Donations.UpdateStatus(ctx, id, st)
}

func (s *DonationService) pageWithTotal(ctx context.Context, f repo.DonationFilter, size, page int) (*RequestPage, error) {
	items, err := s.Donations.Find(ctx, f, repo.PageOpts{Size: size, Page: page, SortBy: "createdAt", SortDesc: true})
	if err != nil {
		return nil, err
	}
	total, err := s.Donations.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.DonationRequest{}
	}
	return &RequestPage{Requests: items, TotalRequest: total}, nil
}
