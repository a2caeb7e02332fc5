package repository

import (
	"context"

	"github.com/coachbill/coachbill/internal/domain/payment"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/logger"
	"github.com/coachbill/coachbill/internal/types"
)

// InMemoryPaymentStore implements payment.Repository. Payments are append-only
// facts, mirrored here by the absence of update and delete.
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
	log *logger.Logger
}

func NewInMemoryPaymentStore(log *logger.Logger) *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
		log:           log,
	}
}

// NewPaymentRepository creates the payment ledger repository used by the service layer
func NewPaymentRepository(log *logger.Logger) payment.Repository {
	return NewInMemoryPaymentStore(log)
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if p.TenantID == "" {
		p.TenantID = types.GetTenantID(ctx)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryPaymentStore) ListBySubscriptionID(ctx context.Context, subscriptionID string) ([]*payment.Payment, error) {
	return s.InMemoryStore.List(ctx, func(p *payment.Payment) bool {
		return p.SubscriptionID == subscriptionID
	}), nil
}
