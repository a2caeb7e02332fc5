package service

import (
	"github.com/coachbill/coachbill/internal/config"
	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/domain/plan"
	"github.com/coachbill/coachbill/internal/domain/subscription"
	"github.com/coachbill/coachbill/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	PlanRepo    plan.Repository
	SubRepo     subscription.Repository
	PaymentRepo payment.Repository
}

// NewServiceParams creates a new ServiceParams with all dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	planRepo plan.Repository,
	subRepo subscription.Repository,
	paymentRepo payment.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:      logger,
		Config:      config,
		PlanRepo:    planRepo,
		SubRepo:     subRepo,
		PaymentRepo: paymentRepo,
	}
}
