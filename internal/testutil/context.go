package testutil

import (
	"context"

	"github.com/coachbill/coachbill/internal/types"
)

// GetContext returns a context with default tenant and user values for testing
func GetContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	return ctx
}
