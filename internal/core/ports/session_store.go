package ports

import (
	"context"
	"time"
)

// SessionStore keeps the binding between a client's opaque session token and
// the id of its cart.
type SessionStore interface {
	// Get returns the order bound to token. found is false when the token is
	// unknown or has expired.
	Get(ctx context.Context, token string) (orderID int64, found bool, err error)

	// Put binds token to orderID for ttl, replacing any earlier binding and
	// restarting the expiry.
	Put(ctx context.Context, token string, orderID int64, ttl time.Duration) error

	// Delete forgets token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
