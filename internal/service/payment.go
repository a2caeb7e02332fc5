package service

import (
	"context"

	"github.com/coachbill/coachbill/internal/api/dto"
	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/validator"
	"github.com/samber/lo"
)

// PaymentService records payment transactions into the ledger. Recording is
// the whole job: settlement happens in an external system and the ledger only
// keeps the resulting facts for reconciliation to read.
type PaymentService interface {
	RecordPayment(ctx context.Context, subscriptionID string, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, subscriptionID string) (*dto.ListPaymentsResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{
		ServiceParams: params,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, subscriptionID string, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := validator.ValidateRequest(&req); err != nil {
		return nil, err
	}

	if _, err := s.SubRepo.Get(ctx, subscriptionID); err != nil {
		return nil, err
	}

	p, err := req.ToPayment(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded payment", "payment_id", p.ID, "subscription_id", subscriptionID, "amount", p.Amount)
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, subscriptionID string) (*dto.ListPaymentsResponse, error) {
	payments, err := s.PaymentRepo.ListBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	items := lo.Map(payments, func(p *payment.Payment, _ int) *dto.PaymentResponse {
		return &dto.PaymentResponse{Payment: p}
	})
	return &dto.ListPaymentsResponse{Items: items, Total: len(items)}, nil
}
