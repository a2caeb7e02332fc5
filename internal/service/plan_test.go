package service

import (
	"testing"

	"github.com/coachbill/coachbill/internal/api/dto"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/testutil"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    PlanService
	subService SubscriptionService
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		PlanRepo:    s.GetStores().PlanRepo,
		SubRepo:     s.GetStores().SubscriptionRepo,
		PaymentRepo: s.GetStores().PaymentRepo,
	}
	s.service = NewPlanService(params)
	s.subService = NewSubscriptionService(params)
}

func (s *PlanServiceSuite) TestCreatePlan() {
	resp, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:      "Quarterly Coaching",
		Price:     decimal.NewFromInt(300),
		Frequency: types.BILLING_FREQUENCY_QUARTERLY,
		DueDay:    lo.ToPtr(15),
	})
	s.NoError(err)
	s.NotEmpty(resp.Plan.ID)
	s.Equal(types.StatusPublished, resp.Plan.Status)

	got, err := s.service.GetPlan(s.GetContext(), resp.Plan.ID)
	s.NoError(err)
	s.Equal("Quarterly Coaching", got.Plan.Name)
}

func (s *PlanServiceSuite) TestCreatePlanValidation() {
	_, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Price:     decimal.NewFromInt(100),
		Frequency: types.BILLING_FREQUENCY_MONTHLY,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:      "Bad Frequency",
		Price:     decimal.NewFromInt(100),
		Frequency: types.BillingFrequency("DAILY"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:      "Bad Due Day",
		Price:     decimal.NewFromInt(100),
		Frequency: types.BILLING_FREQUENCY_MONTHLY,
		DueDay:    lo.ToPtr(42),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PlanServiceSuite) TestUpdatePlan() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:      "Monthly Coaching",
		Price:     decimal.NewFromInt(100),
		Frequency: types.BILLING_FREQUENCY_MONTHLY,
	})
	s.NoError(err)

	updated, err := s.service.UpdatePlan(s.GetContext(), created.Plan.ID, dto.UpdatePlanRequest{
		Price:  lo.ToPtr(decimal.NewFromInt(120)),
		DueDay: lo.ToPtr(5),
	})
	s.NoError(err)
	s.True(updated.Plan.Price.Equal(decimal.NewFromInt(120)))
	s.Equal(5, *updated.Plan.DueDay)
}

func (s *PlanServiceSuite) TestDeletePlanBlockedByActiveSubscription() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:      "Monthly Coaching",
		Price:     decimal.NewFromInt(100),
		Frequency: types.BILLING_FREQUENCY_MONTHLY,
	})
	s.NoError(err)

	_, err = s.subService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		ClientID:  "client_1",
		PlanID:    created.Plan.ID,
		StartDate: "2024-01-10",
	})
	s.NoError(err)

	err = s.service.DeletePlan(s.GetContext(), created.Plan.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PlanServiceSuite) TestListPlans() {
	for _, name := range []string{"A", "B"} {
		_, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Name:      name,
			Price:     decimal.NewFromInt(100),
			Frequency: types.BILLING_FREQUENCY_MONTHLY,
		})
		s.NoError(err)
	}

	resp, err := s.service.ListPlans(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Total)
}
