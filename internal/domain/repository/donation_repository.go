package repository

import (
	"context"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
)

// DonationFilter is the single filter vocabulary for the requests
// collection. Zero-valued fields are omitted from the lowered query, never
// matched as empty strings. Page results and totals are always computed
// from the same filter value, so the two can not diverge.
type DonationFilter struct {
	RequesterEmail string
	Status         entity.DonationStatus
	BloodGroup     string
	District       string
	Upzila         string
}

// PageOpts controls sorting and pagination of a Find. Size <= 0 disables
// pagination; Page is zero-indexed (skip = Size * Page).
type PageOpts struct {
	Size     int
	Page     int
	SortBy   string
	SortDesc bool
}

// DonationRepository defines database operations over the requests collection.
type DonationRepository interface {
	Create(ctx context.Context, r *entity.DonationRequest) error
	FindByID(ctx context.Context, id string) (*entity.DonationRequest, error)
	Find(ctx context.Context, f DonationFilter, p PageOpts) ([]entity.DonationRequest, error)
	Count(ctx context.Context, f DonationFilter) (int64, error)
	UpdateStatus(ctx context.Context, id string, status entity.DonationStatus) error
}
