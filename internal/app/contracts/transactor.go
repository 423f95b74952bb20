package contracts

import "context"

// Transactor runs fn inside one database transaction. Repositories called
// with the ctx handed to fn take part in that transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
