package dto

import (
	"context"

	"github.com/coachbill/coachbill/internal/domain/plan"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/shopspring/decimal"
)

type CreatePlanRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Frequency   types.BillingFrequency `json:"frequency" validate:"required"`
	DueDay      *int                   `json:"due_day,omitempty" validate:"omitempty,gte=1,lte=31"`
}

func (r *CreatePlanRequest) ToPlan(ctx context.Context) *plan.Plan {
	return &plan.Plan{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Frequency:   r.Frequency,
		DueDay:      r.DueDay,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePlanRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	DueDay      *int             `json:"due_day,omitempty" validate:"omitempty,gte=1,lte=31"`
}

type PlanResponse struct {
	*plan.Plan
}

type ListPlansResponse struct {
	Items []*PlanResponse `json:"items"`
	Total int             `json:"total"`
}
