// Package storage is the encrypted key/value store of the client.
//
// Values are JSON-serialized, sealed with the process-wide codec and written
// to the local records table. Nothing readable by other parties leaves this
// package: the repository only ever sees ciphertext.
//
// Reads never fail loudly. A record that is missing, unreadable, or sealed
// under a different secret is reported as absent, and an undecryptable record
// is deleted so it does not linger. Only the exact ciphertext that failed to
// open is deleted, so a value written meanwhile survives.
package storage

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dmitrijs2005/railticket/internal/client/repositories/records"
	"github.com/dmitrijs2005/railticket/internal/logging"
)

// Codec seals and opens values. *cryptox.Codec satisfies it.
type Codec interface {
	Encrypt(v any) (string, error)
	Decrypt(ciphertext string, v any) error
}

type Store struct {
	repo   records.Repository
	codec  Codec
	logger logging.Logger
}

func New(repo records.Repository, codec Codec, logger logging.Logger) *Store {
	return &Store{repo: repo, codec: codec, logger: logger.With("module", "storage")}
}

// Get loads the value under key into v and reports whether it was present.
func (s *Store) Get(ctx context.Context, key string, v any) bool {
	ct, found, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "record read failed", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}

	if err := s.codec.Decrypt(ct, v); err != nil {
		s.logger.Warn(ctx, "discarding unreadable record", "key", key, "error", err)
		deleted, derr := s.repo.DeleteIf(ctx, key, ct)
		if derr != nil {
			s.logger.Warn(ctx, "failed to discard record", "key", key, "error", derr)
		} else if !deleted {
			s.logger.Debug(ctx, "unreadable record already replaced", "key", key)
		}
		return false
	}
	return true
}

// Set seals v and stores it under key. A nil v removes the key.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	if isNil(v) {
		return s.Remove(ctx, key)
	}

	ct, err := s.codec.Encrypt(v)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", key, err)
	}

	if err := s.repo.Set(ctx, key, ct); err != nil {
		return err
	}
	return nil
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// Clear drops every stored record.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
