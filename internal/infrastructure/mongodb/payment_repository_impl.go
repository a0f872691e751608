package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	"github.com/savelife-bd/savelife-server/internal/domain/repository"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection("payments")}
}

// EnsureIndexes creates the unique transactionId index that backs payment
// idempotency. Called once at startup.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.PaymentRecord) error {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, txID string) (*entity.PaymentRecord, error) {
	var p entity.PaymentRecord
	err := r.coll.FindOne(ctx, bson.M{"transactionId": txID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
