package repository

import (
	"context"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
)

// PaymentRepository defines database operations over the payments ledger.
type PaymentRepository interface {
	// Create inserts a record; ErrDuplicate if the transaction id exists.
	Create(ctx context.Context, p *entity.PaymentRecord) error
	// FindByTransactionID returns ErrNotFound when no record exists.
	FindByTransactionID(ctx context.Context, txID string) (*entity.PaymentRecord, error)
}
