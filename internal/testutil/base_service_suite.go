package testutil

import (
	"context"
	"time"

	"github.com/coachbill/coachbill/internal/config"
	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/domain/plan"
	"github.com/coachbill/coachbill/internal/domain/subscription"
	"github.com/coachbill/coachbill/internal/logger"
	"github.com/coachbill/coachbill/internal/repository"
	"github.com/coachbill/coachbill/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	PlanRepo         plan.Repository
	SubscriptionRepo subscription.Repository
	PaymentRepo      payment.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()

	var err error
	s.logger, err = logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = GetContext()
	s.now = time.Now().UTC()
	s.setupStores()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		PlanRepo:         repository.NewInMemoryPlanStore(s.logger),
		SubscriptionRepo: repository.NewInMemorySubscriptionStore(s.logger),
		PaymentRepo:      repository.NewInMemoryPaymentStore(s.logger),
	}
}

// ClearStores resets all stores to their initial state
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.PlanRepo.(*repository.InMemoryPlanStore).Clear()
	s.stores.SubscriptionRepo.(*repository.InMemorySubscriptionStore).Clear()
	s.stores.PaymentRepo.(*repository.InMemoryPaymentStore).Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
