package flatfile

import (
	"context"

	"github.com/nlefevre/biosite/internal/store"
)

type registrationsRepo struct {
	s *Store
}

func (r *registrationsRepo) Lookup(_ context.Context, addr string) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	username, ok := r.s.state.IPToUser[addr]
	if !ok {
		return "", store.ErrNotFound
	}
	return username, nil
}

func (r *registrationsRepo) Record(_ context.Context, addr, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.state.IPToUser[addr] = username
	r.s.persistLocked()
	return nil
}
