package store

import (
	"context"
	"errors"

	"github.com/nlefevre/biosite/internal/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface over the three aggregate
// mappings: accounts, sessions and the registration guard. Concrete drivers
// (flatfile, bolt) implement it. Every mutating call flushes synchronously
// before returning, so the durable state equals the in-memory state the
// moment a mutation completes.
type Store interface {
	Accounts() Accounts
	Sessions() Sessions
	Registrations() Registrations

	// Close releases any underlying resources.
	Close() error
}

type Accounts interface {
	// Get returns the account for a username.
	Get(ctx context.Context, username string) (domain.Account, error)

	// Put creates or overwrites an account.
	Put(ctx context.Context, account domain.Account) error
}

type Sessions interface {
	// Owner resolves a session token to the owning username.
	Owner(ctx context.Context, token string) (string, error)

	// Create records token -> username.
	Create(ctx context.Context, token, username string) error

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

type Registrations interface {
	// Lookup returns the username a client address registered, if any.
	Lookup(ctx context.Context, addr string) (string, error)

	// Record marks addr as having registered username. Entries never expire.
	Record(ctx context.Context, addr, username string) error
}
