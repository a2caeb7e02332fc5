package service

import (
	"context"
	"time"

	"github.com/coachbill/coachbill/internal/api/dto"
	"github.com/coachbill/coachbill/internal/billing"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/types"
)

// FinancialStatusService is the read side of the billing engine: it resolves a
// subscription's plan and ledger snapshot and runs the pure projection →
// reconciliation → classification → aggregation pipeline over them. Nothing is
// cached or written back; every call recomputes from the current records.
type FinancialStatusService interface {
	// GetFinancialStatus computes the financial read-model for a subscription
	// as of the given reference date. asOf is the only clock the computation
	// sees, which keeps repeated calls deterministic.
	GetFinancialStatus(ctx context.Context, subscriptionID string, asOf time.Time) (*dto.FinancialStatusResponse, error)
}

type financialStatusService struct {
	ServiceParams
}

func NewFinancialStatusService(params ServiceParams) FinancialStatusService {
	return &financialStatusService{
		ServiceParams: params,
	}
}

func (s *financialStatusService) GetFinancialStatus(ctx context.Context, subscriptionID string, asOf time.Time) (*dto.FinancialStatusResponse, error) {
	asOf = types.DateOnly(asOf)

	sub, err := s.SubRepo.Get(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	// A subscription whose plan is gone has no billing configuration. That is
	// a valid state to render, not an error to surface.
	p, err := s.PlanRepo.Get(ctx, sub.PlanID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnw("subscription has no plan linkage", "subscription_id", subscriptionID, "plan_id", sub.PlanID)
			return dto.NewUnknownFinancialStatusResponse(subscriptionID, asOf), nil
		}
		return nil, err
	}

	payments, err := s.PaymentRepo.ListBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	cycles, err := billing.ProjectCycles(sub, p, billing.ProjectionParams{
		Today:         asOf,
		HorizonMonths: s.Config.Billing.HorizonMonths,
		DefaultDueDay: s.Config.Billing.DefaultDueDay,
	})
	if err != nil {
		// Iteration cap: an internal invariant violation. The partial cycle
		// list is still usable, so log and keep going.
		s.Logger.Errorw("cycle projection hit the iteration cap", "subscription_id", subscriptionID, "error", err)
	}

	cycles = billing.Reconcile(cycles, payments, p.Frequency)
	cycles = billing.ClassifyCycles(cycles, asOf)
	status := billing.Aggregate(cycles, asOf)
	reminders := billing.EvaluateReminders(cycles, asOf, s.Config.Billing.ReminderLeadDays)

	return dto.NewFinancialStatusResponse(subscriptionID, asOf, status, cycles, reminders), nil
}
