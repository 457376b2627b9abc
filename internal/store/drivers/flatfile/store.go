// Package flatfile persists the whole aggregate as one JSON file with
// three top-level maps: users, ipToUser and sessions. Every mutation
// rewrites the entire file before returning.
package flatfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/nlefevre/biosite/internal/domain"
	"github.com/nlefevre/biosite/internal/store"
)

// Store is the flat-file driver. A single mutex serializes every
// read-modify-write sequence; net/http runs handlers concurrently and the
// aggregate has no finer-grained ownership than "all of it".
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
	state  fileState
}

// fileState is the on-disk envelope.
type fileState struct {
	Users    map[string]accountRecord `json:"users"`
	IPToUser map[string]string        `json:"ipToUser"`
	Sessions map[string]string        `json:"sessions"`
}

type accountRecord struct {
	Password string        `json:"password"`
	Bio      string        `json:"bio"`
	Style    *domain.Style `json:"style,omitempty"`
}

func (r accountRecord) toDomain(username string) domain.Account {
	return domain.Account{
		Username:       username,
		PasswordDigest: r.Password,
		Bio:            r.Bio,
		Style:          r.Style,
	}
}

func recordFrom(a domain.Account) accountRecord {
	return accountRecord{
		Password: a.PasswordDigest,
		Bio:      a.Bio,
		Style:    a.Style,
	}
}

// NewStore opens (or initializes) the flat-file store at path. A missing
// file yields an empty aggregate; a malformed file is logged and the prior
// state (empty on first open) is retained. Load failures are never
// surfaced to callers.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
		state: fileState{
			Users:    make(map[string]accountRecord),
			IPToUser: make(map[string]string),
			Sessions: make(map[string]string),
		},
	}
	s.load()
	return s
}

func (s *Store) Accounts() store.Accounts           { return &accountsRepo{s} }
func (s *Store) Sessions() store.Sessions           { return &sessionsRepo{s} }
func (s *Store) Registrations() store.Registrations { return &registrationsRepo{s} }

// Close flushes one last time so shutdown never races a pending write.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read db file", "path", s.path, "error", err)
		}
		return
	}

	// Decode into a fresh value so a malformed file cannot clobber the
	// current state halfway through.
	var loaded fileState
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.logger.Warn("failed to parse db file, keeping previous state",
			"path", s.path, "error", err)
		return
	}

	if loaded.Users == nil {
		loaded.Users = make(map[string]accountRecord)
	}
	if loaded.IPToUser == nil {
		loaded.IPToUser = make(map[string]string)
	}
	if loaded.Sessions == nil {
		loaded.Sessions = make(map[string]string)
	}
	s.state = loaded
}

// flushLocked serializes the whole aggregate and replaces the backing file.
// Callers must hold s.mu.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode db state: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write db file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace db file: %w", err)
	}
	return nil
}

// persistLocked flushes and downgrades failures to a log line. The
// in-memory aggregate stays authoritative; a transient disk error should
// not fail the request that already mutated state. Callers must hold s.mu.
func (s *Store) persistLocked() {
	if err := s.flushLocked(); err != nil {
		s.logger.Error("failed to persist store", "path", s.path, "error", err)
	}
}
