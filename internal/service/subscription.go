package service

import (
	"context"

	"github.com/coachbill/coachbill/internal/api/dto"
	"github.com/coachbill/coachbill/internal/domain/subscription"
	"github.com/coachbill/coachbill/internal/validator"
	"github.com/samber/lo"
)

// SubscriptionService links clients to plans. The linkage (plus its start
// date) is the anchor the projection engine derives cycles from.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	// ListSubscriptions returns all subscriptions, or a single client's when
	// clientID is non-empty.
	ListSubscriptions(ctx context.Context, clientID string) (*dto.ListSubscriptionsResponse, error)
	DeleteSubscription(ctx context.Context, id string) error
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := validator.ValidateRequest(&req); err != nil {
		return nil, err
	}

	// Plan must exist before a client can subscribe to it
	if _, err := s.PlanRepo.Get(ctx, req.PlanID); err != nil {
		return nil, err
	}

	sub, err := req.ToSubscription(ctx)
	if err != nil {
		return nil, err
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if err := s.SubRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("created subscription", "subscription_id", sub.ID, "plan_id", sub.PlanID, "client_id", sub.ClientID)
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, clientID string) (*dto.ListSubscriptionsResponse, error) {
	var subs []*subscription.Subscription
	var err error
	if clientID != "" {
		subs, err = s.SubRepo.ListByClientID(ctx, clientID)
	} else {
		subs, err = s.SubRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	items := lo.Map(subs, func(sub *subscription.Subscription, _ int) *dto.SubscriptionResponse {
		return &dto.SubscriptionResponse{Subscription: sub}
	})
	return &dto.ListSubscriptionsResponse{Items: items, Total: len(items)}, nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	return s.SubRepo.Delete(ctx, id)
}
