package flatfile

import (
	"context"

	"github.com/nlefevre/biosite/internal/store"
)

type sessionsRepo struct {
	s *Store
}

func (r *sessionsRepo) Owner(_ context.Context, token string) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	username, ok := r.s.state.Sessions[token]
	if !ok {
		return "", store.ErrNotFound
	}
	return username, nil
}

func (r *sessionsRepo) Create(_ context.Context, token, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.state.Sessions[token] = username
	r.s.persistLocked()
	return nil
}

func (r *sessionsRepo) Delete(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.state.Sessions, token)
	r.s.persistLocked()
	return nil
}
