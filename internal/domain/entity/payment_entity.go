package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is written exactly once per successfully paid checkout
// session. TransactionID is the processor's payment-intent reference and
// carries a unique index; donor name/email come from session metadata, not
// from the users collection.
type PaymentRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	DonorName     string             `bson:"donorName" json:"donorName"`
	DonorEmail    string             `bson:"donorEmail" json:"donorEmail"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        string             `bson:"status" json:"status"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
