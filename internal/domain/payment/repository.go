package payment

import (
	"context"
)

// Repository defines the interface for the payment ledger. The ledger is
// append-only: there is deliberately no update or delete.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	ListBySubscriptionID(ctx context.Context, subscriptionID string) ([]*Payment, error)
}
