package repository

import (
	"context"

	"github.com/coachbill/coachbill/internal/domain/plan"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/logger"
	"github.com/coachbill/coachbill/internal/types"
)

// InMemoryPlanStore implements plan.Repository
type InMemoryPlanStore struct {
	*InMemoryStore[*plan.Plan]
	log *logger.Logger
}

func NewInMemoryPlanStore(log *logger.Logger) *InMemoryPlanStore {
	return &InMemoryPlanStore{
		InMemoryStore: NewInMemoryStore[*plan.Plan](),
		log:           log,
	}
}

// NewPlanRepository creates the plan repository used by the service layer
func NewPlanRepository(log *logger.Logger) plan.Repository {
	return NewInMemoryPlanStore(log)
}

func (s *InMemoryPlanStore) Create(ctx context.Context, p *plan.Plan) error {
	if p == nil {
		return ierr.NewError("plan cannot be nil").
			WithHint("Plan cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if p.TenantID == "" {
		p.TenantID = types.GetTenantID(ctx)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPlanStore) Get(ctx context.Context, id string) (*plan.Plan, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryPlanStore) List(ctx context.Context) ([]*plan.Plan, error) {
	tenantID := types.GetTenantID(ctx)
	return s.InMemoryStore.List(ctx, func(p *plan.Plan) bool {
		return p.Status == types.StatusPublished && (tenantID == "" || p.TenantID == tenantID)
	}), nil
}

func (s *InMemoryPlanStore) Update(ctx context.Context, p *plan.Plan) error {
	if p == nil {
		return ierr.NewError("plan cannot be nil").
			WithHint("Plan cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPlanStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
