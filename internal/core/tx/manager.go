// Package tx defines the transaction management abstraction used by domain services.
package tx

import "context"

// Manager runs functions within a database transaction.
// The concrete implementation lives in infrastructure/storage/postgres.
type Manager interface {
	// RunInTransaction executes fn within a transaction.
	// If a transaction already exists in ctx, it is reused.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// ReadOnly executes fn in a read-only transaction.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
