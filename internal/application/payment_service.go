package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/domain/entity"
	repo "github.com/savelife-bd/savelife-server/internal/domain/repository"
	"github.com/savelife-bd/savelife-server/pkg/helpers"
	"github.com/savelife-bd/savelife-server/pkg/mailer"
)

var ErrInvalidAmount = errors.New("invalid donation amount")

// CheckoutSession is the processor-neutral view of a checkout session.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	PaymentIntentID string
	Metadata        map[string]string
}

type CreateSessionInput struct {
	ProductName string
	UnitAmount  int64
	Currency    string
	DonorName   string
	DonorEmail  string
}

// CheckoutGateway is the payment-processor oracle. The Stripe
// implementation lives in internal/infrastructure/stripepay; tests supply
// fakes.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*CheckoutSession, error)
}

// PaymentService runs the two-phase checkout flow: session creation
// (no store write) and confirmation (idempotent ledger insert).
type PaymentService struct {
	Gateway  CheckoutGateway
	Payments repo.PaymentRepository
	Receipts *helpers.RabbitPublisher
	Logger   *logrus.Logger
}

func NewPaymentService(gw CheckoutGateway, payments repo.PaymentRepository, receipts *helpers.RabbitPublisher, logger *logrus.Logger) *PaymentService {
	return &PaymentService{Gateway: gw, Payments: payments, Receipts: receipts, Logger: logger}
}

type CheckoutInput struct {
	DonateAmount string
	DonorName    string
	DonorEmail   string
}

// CreateCheckout converts the major-unit amount to the processor's
// minor-unit integer (multiply by 100, truncate) and creates the session.
// Returns the processor-hosted redirect URL.
func (s *PaymentService) CreateCheckout(ctx context.Context, in CheckoutInput) (string, error) {
	amount, err := strconv.ParseFloat(in.DonateAmount, 64)
	if err != nil || amount <= 0 {
		return "", ErrInvalidAmount
	}
	unitAmount := int64(amount * 100)

	sess, err := s.Gateway.CreateSession(ctx, CreateSessionInput{
		ProductName: "Blood donation fund",
		UnitAmount:  unitAmount,
		Currency:    "usd",
		DonorName:   in.DonorName,
		DonorEmail:  in.DonorEmail,
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// ConfirmResult is the tagged outcome of a confirmation attempt. Confirmed
// is false when the session exists but has not been paid; Record is set
// only when Confirmed is true.
type ConfirmResult struct {
	Confirmed bool
	Record    *entity.PaymentRecord
}

// ConfirmCheckout retrieves the session and, if paid, persists a payment
// record exactly once per transaction id. Repeated confirmations of the
// same session return the already-stored record.
func (s *PaymentService) ConfirmCheckout(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	sess, err := s.Gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.PaymentStatus != "paid" {
		return &ConfirmResult{Confirmed: false}, nil
	}

	if existing, err := s.Payments.FindByTransactionID(ctx, sess.PaymentIntentID); err == nil {
		return &ConfirmResult{Confirmed: true, Record: existing}, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	rec := &entity.PaymentRecord{
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		DonorName:     sess.Metadata["donorName"],
		DonorEmail:    sess.Metadata["donorEmail"],
		TransactionID: sess.PaymentIntentID,
		Status:        sess.PaymentStatus,
		PaidAt:        time.Now().UTC(),
	}
	if err := s.Payments.Create(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Lost a confirmation race; the stored record wins.
			return s.confirmedFromStore(ctx, sess.PaymentIntentID)
		}
		return nil, err
	}

	s.publishReceipt(ctx, rec)
	return &ConfirmResult{Confirmed: true, Record: rec}, nil
}

func (s *PaymentService) confirmedFromStore(ctx context.Context, txID string) (*ConfirmResult, error) {
	existing, err := s.Payments.FindByTransactionID(ctx, txID)
	if err != nil {
		return nil, err
	}
	return &ConfirmResult{Confirmed: true, Record: existing}, nil
}

// publishReceipt queues a receipt email. Best effort: a broker outage must
// never fail a confirmed payment.
func (s *PaymentService) publishReceipt(ctx context.Context, rec *entity.PaymentRecord) {
	if s.Receipts == nil || rec.DonorEmail == "" {
		return
	}
	job := mailer.EmailJob{
		To:      rec.DonorEmail,
		Subject: "Thank you for your donation",
		Text: fmt.Sprintf("Dear %s,\n\nWe received your donation of %.2f %s (ref %s).\n\nThe SaveLife team",
			rec.DonorName, rec.Amount, rec.Currency, rec.TransactionID),
	}
	if err := s.Receipts.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("transaction_id", rec.TransactionID).Warn("receipt publish failed")
	}
}
