package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("no value stored under key")

// Store is a passive byte-level backing device. It owns no domain
// semantics; callers serialize whole collections under a single key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// LoadJSON reads and decodes the value under key into v. Absence, a read
// failure or corrupt JSON all yield false so the caller falls back to its
// empty-collection default; failures are logged and never fatal.
func LoadJSON(ctx context.Context, s Store, key string, v any) bool {
	data, err := s.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("storage load %q error: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("storage key %q holds corrupt JSON, ignoring: %v", key, err)
		return false
	}
	return true
}

// SaveJSON encodes v and writes it under key. Write failures (quota,
// unreachable backend) are logged and reported as false; the caller's
// in-memory state stays authoritative and is never rolled back.
func SaveJSON(ctx context.Context, s Store, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage marshal for %q error: %v", key, err)
		return false
	}
	if err := s.Save(ctx, key, data); err != nil {
		log.Printf("storage save %q error: %v", key, err)
		return false
	}
	return true
}
