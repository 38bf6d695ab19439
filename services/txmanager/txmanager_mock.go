package txmanager

import "context"

// PassthroughTransactionManager runs the function with the caller's context and no transaction
type PassthroughTransactionManager struct{}

func (PassthroughTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
