package service

import (
	"context"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
)

type ProfileService struct {
	Store store.Store
}

// Get fetches an account by username.
func (s *ProfileService) Get(ctx context.Context, username string) (domain.Account, error) {
	return s.Store.Accounts().Get(ctx, username)
}

// UpdateBio overwrites the bio unconditionally. Authorization is the
// caller's concern: the web layer only passes usernames it resolved from a
// live session.
func (s *ProfileService) UpdateBio(ctx context.Context, username, bio string) error {
	account, err := s.Store.Accounts().Get(ctx, username)
	if err != nil {
		return err
	}
	account.Bio = bio
	return s.Store.Accounts().Put(ctx, account)
}

// UpdateStyle overwrites the colour pair. Empty values fall back to the
// defaults so a half-filled form still yields a usable style.
func (s *ProfileService) UpdateStyle(ctx context.Context, username string, style domain.Style) error {
	account, err := s.Store.Accounts().Get(ctx, username)
	if err != nil {
		return err
	}

	if style.Background == "" {
		style.Background = domain.DefaultStyle.Background
	}
	if style.Text == "" {
		style.Text = domain.DefaultStyle.Text
	}
	account.Style = &style
	return s.Store.Accounts().Put(ctx, account)
}
