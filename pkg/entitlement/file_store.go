package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the record as a single JSON file. This is the natural
// backend for a client-resident installation: one file, rewritten whole on
// every save via temp-file rename so a crash mid-write never leaves a
// half-serialized record behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created if it does not exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrInvalidConfig
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &FileStore{path: abs}, nil
}

// Load reads and decodes the record. A missing file is a fresh
// installation; an unparsable file is treated as corruption. Both degrade
// to the default record without error.
func (s *FileStore) Load(ctx context.Context) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSubscription(), nil
		}
		return DefaultSubscription(), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		// Corrupted record. Recover locally, never surface to the caller.
		return DefaultSubscription(), nil
	}
	return &sub, nil
}

// Save writes the full record atomically: serialize to a temp file in the
// same directory, then rename over the target.
func (s *FileStore) Save(ctx context.Context, sub *Subscription) error {
	if sub == nil {
		return ErrInvalidConfig
	}

	data, err := json.Marshal(sub)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".entitlement-*.json")
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
