package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	"github.com/savelife-bd/savelife-server/internal/domain/repository"
)

type DonationRepository struct {
	coll *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{coll: db.Collection("requests")}
}

// filterDoc is the single lowering of DonationFilter into a query document.
// Both Find and Count go through it, which keeps page results and totals on
// the identical filter. Zero-valued fields are omitted entirely.
func filterDoc(f repository.DonationFilter) bson.M {
	q := bson.M{}
	if f.RequesterEmail != "" {
		q["requesterEmail"] = f.RequesterEmail
	}
	if f.Status != "" {
		q["donationStatus"] = f.Status
	}
	if f.BloodGroup != "" {
		q["bloodGroup"] = f.BloodGroup
	}
	if f.District != "" {
		q["districtName"] = f.District
	}
	if f.Upzila != "" {
		q["upzila"] = f.Upzila
	}
	return q
}

func (r *DonationRepository) Create(ctx context.Context, d *entity.DonationRequest) error {
	d.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id string) (*entity.DonationRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	var d entity.DonationRequest
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepository) Find(ctx context.Context, f repository.DonationFilter, p repository.PageOpts) ([]entity.DonationRequest, error) {
	opts := options.Find()
	if p.SortBy != "" {
		dir := 1
		if p.SortDesc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: p.SortBy, Value: dir}})
	}
	if p.Size > 0 {
		opts.SetLimit(int64(p.Size))
		opts.SetSkip(int64(p.Size) * int64(p.Page))
	}

	cur, err := r.coll.Find(ctx, filterDoc(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []entity.DonationRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DonationRepository) Count(ctx context.Context, f repository.DonationFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, filterDoc(f))
}

func (r *DonationRepository) UpdateStatus(ctx context.Context, id string, status entity.DonationStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidID
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"donationStatus": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.DonationRepository = (*DonationRepository)(nil)
