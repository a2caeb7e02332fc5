package subscription

import (
	"context"
)

// Repository defines the interface for subscription storage
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Get(ctx context.Context, id string) (*Subscription, error)
	List(ctx context.Context) ([]*Subscription, error)
	ListByClientID(ctx context.Context, clientID string) ([]*Subscription, error)
	Delete(ctx context.Context, id string) error
}
