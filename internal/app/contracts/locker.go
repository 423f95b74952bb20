package contracts

import (
	"context"
	"time"
)

// LockerService grants expiring leases on a key. TryLock returns the token
// that Unlock and Refresh require.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, expiration time.Duration) error
}
