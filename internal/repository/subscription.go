package repository

import (
	"context"

	"github.com/coachbill/coachbill/internal/domain/subscription"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/logger"
	"github.com/coachbill/coachbill/internal/types"
)

// InMemorySubscriptionStore implements subscription.Repository
type InMemorySubscriptionStore struct {
	*InMemoryStore[*subscription.Subscription]
	log *logger.Logger
}

func NewInMemorySubscriptionStore(log *logger.Logger) *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		InMemoryStore: NewInMemoryStore[*subscription.Subscription](),
		log:           log,
	}
}

// NewSubscriptionRepository creates the subscription repository used by the service layer
func NewSubscriptionRepository(log *logger.Logger) subscription.Repository {
	return NewInMemorySubscriptionStore(log)
}

func (s *InMemorySubscriptionStore) Create(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return ierr.NewError("subscription cannot be nil").
			WithHint("Subscription cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if sub.TenantID == "" {
		sub.TenantID = types.GetTenantID(ctx)
	}
	return s.InMemoryStore.Create(ctx, sub.ID, sub)
}

func (s *InMemorySubscriptionStore) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemorySubscriptionStore) List(ctx context.Context) ([]*subscription.Subscription, error) {
	tenantID := types.GetTenantID(ctx)
	return s.InMemoryStore.List(ctx, func(sub *subscription.Subscription) bool {
		return sub.Status == types.StatusPublished && (tenantID == "" || sub.TenantID == tenantID)
	}), nil
}

func (s *InMemorySubscriptionStore) ListByClientID(ctx context.Context, clientID string) ([]*subscription.Subscription, error) {
	return s.InMemoryStore.List(ctx, func(sub *subscription.Subscription) bool {
		return sub.Status == types.StatusPublished && sub.ClientID == clientID
	}), nil
}

func (s *InMemorySubscriptionStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
