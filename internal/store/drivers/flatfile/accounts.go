package flatfile

import (
	"context"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
)

type accountsRepo struct {
	s *Store
}

func (r *accountsRepo) Get(_ context.Context, username string) (domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.state.Users[username]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}
	return rec.toDomain(username), nil
}

func (r *accountsRepo) Put(_ context.Context, account domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.state.Users[account.Username] = recordFrom(account)
	r.s.persistLocked()
	return nil
}
