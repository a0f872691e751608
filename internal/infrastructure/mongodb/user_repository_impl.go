package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	"github.com/savelife-bd/savelife-server/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.UserProfile) error {
	u.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.UserProfile, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []entity.UserProfile
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	var u entity.UserProfile
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, upd entity.ProfileUpdate) error {
	set := bson.M{
		"name":       upd.Name,
		"district":   upd.District,
		"upzila":     upd.Upzila,
		"bloodGroup": upd.BloodGroup,
		"photoURL":   upd.PhotoURL,
	}
	return r.setByEmail(ctx, email, set)
}

func (r *UserRepository) UpdateStatus(ctx context.Context, email string, status entity.UserStatus) error {
	return r.setByEmail(ctx, email, bson.M{"status": status})
}

func (r *UserRepository) UpdateRole(ctx context.Context, email string, role entity.Role) error {
	return r.setByEmail(ctx, email, bson.M{"role": role})
}

func (r *UserRepository) setByEmail(ctx context.Context, email string, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
