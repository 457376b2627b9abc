package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
	"github.com/nlefevre/biosite/pkg/cryptox"
	"github.com/nlefevre/biosite/pkg/slogx"
)

var (
	ErrDuplicateIP        = errors.New("address already registered an account")
	ErrMissingField       = errors.New("username and password are required")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	Store store.Store
}

// Register creates an account for a username/password pair coming from the
// given client address. Validation runs in a fixed order and the first
// failing rule wins: registration guard, then required fields, then
// username uniqueness.
func (s *AccountService) Register(ctx context.Context, username, password, clientAddr string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Registrations().Lookup(ctx, clientAddr); err == nil {
		log.Warn("registration refused, address already used",
			slog.String("addr", clientAddr),
		)
		return ErrDuplicateIP
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if username == "" || password == "" {
		return ErrMissingField
	}

	if _, err := s.Store.Accounts().Get(ctx, username); err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	account := domain.Account{
		Username:       username,
		PasswordDigest: cryptox.HashPassword(password),
		Bio:            domain.DefaultBio,
	}
	if err := s.Store.Accounts().Put(ctx, account); err != nil {
		return err
	}
	if err := s.Store.Registrations().Record(ctx, clientAddr, username); err != nil {
		return err
	}

	log.Info("account registered", slog.String("username", username))
	return nil
}

// Login verifies credentials and opens a new session, returning its token.
// Unknown usernames and wrong passwords produce the same error so account
// existence never leaks. Multiple concurrent sessions per account are fine.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().Get(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !cryptox.VerifyPassword(password, account.PasswordDigest) {
		return "", ErrInvalidCredentials
	}

	token, err := cryptox.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.Store.Sessions().Create(ctx, token, username); err != nil {
		return "", err
	}

	log.Info("session opened", slog.String("username", username))
	return token, nil
}

// Logout deletes the session for a token. Unknown tokens are a no-op.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.Store.Sessions().Delete(ctx, token)
}
