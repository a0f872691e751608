package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	repo "github.com/savelife-bd/savelife-server/internal/domain/repository"
	"github.com/savelife-bd/savelife-server/pkg/helpers"
)

// UserService owns the profile lifecycle: registration defaults, field
// whitelisting on updates, and the role/status flags.
type UserService struct {
	Repo      repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type RegisterInput struct {
	Email      string
	Name       string
	District   string
	Upzila     string
	BloodGroup string
	PhotoURL   string
}

// Register creates a profile with server-assigned defaults: every new user
// starts as an Active Donor, createdAt is set once by the store.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.UserProfile, error) {
	u := &entity.UserProfile{
		Email:      in.Email,
		Name:       in.Name,
		District:   in.District,
		Upzila:     in.Upzila,
		BloodGroup: in.BloodGroup,
		PhotoURL:   in.PhotoURL,
		Role:       entity.RoleDonor,
		Status:     entity.StatusActive,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]entity.UserProfile, error) {
	return s.Repo.FindAll(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	return s.Repo.FindByEmail(ctx, email)
}

// UpdateProfile rewrites exactly the whitelisted fields; extra fields a
// client may have sent never reach the store.
func (s *UserService) UpdateProfile(ctx context.Context, email string, upd entity.ProfileUpdate) error {
	return s.Repo.UpdateProfile(ctx, email, upd)
}

func (s *UserService) UpdateStatus(ctx context.Context, email, status string) error {
	st, err := entity.ParseUserStatus(status)
	if err != nil {
		return err
	}
	return s.Repo.UpdateStatus(ctx, email, st)
}

func (s *UserService) UpdateRole(ctx context.Context, email, role string) error {
	r, err := entity.ParseRole(role)
	if err != nil {
		return err
	}
	return s.Repo.UpdateRole(ctx, email, r)
}

// UploadPhoto stores a profile photo in GCS and persists its public URL on
// the caller's profile. Returns the stored URL.
func (s *UserService) UploadPhoto(ctx context.Context, email, filename, contentType string, r io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	object := fmt.Sprintf("profiles/%s/%d-%s%s", email, time.Now().UTC().Unix(), uuid.NewString()[:8], ext)
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, object, contentType, r)
	if err != nil {
		return "", err
	}

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	upd := entity.ProfileUpdate{
		Name:       u.Name,
		District:   u.District,
		Upzila:     u.Upzila,
		BloodGroup: u.BloodGroup,
		PhotoURL:   url,
	}
	if err := s.Repo.UpdateProfile(ctx, email, upd); err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"email": email, "object": object}).Info("profile photo updated")
	}
	return url, nil
}
