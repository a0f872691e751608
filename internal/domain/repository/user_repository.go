package repository

import (
	"context"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
)

// UserRepository defines database operations over the users collection.
type UserRepository interface {
	Create(ctx context.Context, u *entity.UserProfile) error
	FindAll(ctx context.Context) ([]entity.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, email string, upd entity.ProfileUpdate) error
	UpdateStatus(ctx context.Context, email string, status entity.UserStatus) error
	UpdateRole(ctx context.Context, email string, role entity.Role) error
}
