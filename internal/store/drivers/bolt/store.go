// Package bolt implements the store contract on a bbolt database. It keeps
// the single-file property of the flat-file driver while making each
// mutation an individual committed transaction instead of a whole-file
// rewrite.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
)

var (
	bucketAccounts      = []byte("accounts")
	bucketSessions      = []byte("sessions")
	bucketRegistrations = []byte("ip_registrations")
)

type Store struct {
	db *bbolt.DB
}

// accountRecord mirrors the flat-file account value so both drivers share
// one serialized shape.
type accountRecord struct {
	Password string        `json:"password"`
	Bio      string        `json:"bio"`
	Style    *domain.Style `json:"style,omitempty"`
}

// NewStore opens (or creates) the bbolt database at path and ensures the
// three buckets exist.
func NewStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAccounts, bucketSessions, bucketRegistrations} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Accounts() store.Accounts           { return &accountsRepo{db: s.db} }
func (s *Store) Sessions() store.Sessions           { return &sessionsRepo{db: s.db} }
func (s *Store) Registrations() store.Registrations { return &registrationsRepo{db: s.db} }

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// getString reads a plain string value from a bucket within a view
// transaction, mapping absence to store.ErrNotFound.
func getString(db *bbolt.DB, bucket []byte, key string) (string, error) {
	var value string
	err := db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucket).Get([]byte(key))
		if raw == nil {
			return store.ErrNotFound
		}
		value = string(raw)
		return nil
	})
	return value, err
}

// putString writes a plain string value in its own committed transaction.
func putString(db *bbolt.DB, bucket []byte, key, value string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), []byte(value))
	})
}

type accountsRepo struct {
	db *bbolt.DB
}

func (r *accountsRepo) Get(_ context.Context, username string) (domain.Account, error) {
	var account domain.Account
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketAccounts).Get([]byte(username))
		if raw == nil {
			return store.ErrNotFound
		}

		var rec accountRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("failed to decode account %q: %w", username, err)
		}
		account = domain.Account{
			Username:       username,
			PasswordDigest: rec.Password,
			Bio:            rec.Bio,
			Style:          rec.Style,
		}
		return nil
	})
	return account, err
}

func (r *accountsRepo) Put(_ context.Context, account domain.Account) error {
	raw, err := json.Marshal(accountRecord{
		Password: account.PasswordDigest,
		Bio:      account.Bio,
		Style:    account.Style,
	})
	if err != nil {
		return fmt.Errorf("failed to encode account %q: %w", account.Username, err)
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAccounts).Put([]byte(account.Username), raw)
	})
}

type sessionsRepo struct {
	db *bbolt.DB
}

func (r *sessionsRepo) Owner(_ context.Context, token string) (string, error) {
	return getString(r.db, bucketSessions, token)
}

func (r *sessionsRepo) Create(_ context.Context, token, username string) error {
	return putString(r.db, bucketSessions, token, username)
}

func (r *sessionsRepo) Delete(_ context.Context, token string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSessions).Delete([]byte(token))
	})
}

type registrationsRepo struct {
	db *bbolt.DB
}

func (r *registrationsRepo) Lookup(_ context.Context, addr string) (string, error) {
	return getString(r.db, bucketRegistrations, addr)
}

func (r *registrationsRepo) Record(_ context.Context, addr, username string) error {
	return putString(r.db, bucketRegistrations, addr, username)
}
