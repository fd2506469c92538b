// Package store persists the engine's state as named JSON blobs.
//
// Each logical entity (active course, course list, quiz attempts, user
// progress, badges) lives under its own string key and is saved
// independently. There is no cross-key transaction: a crash between two
// saves can leave keys inconsistent, which the engine accepts.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persistence boundary: load, save, and remove JSON blobs by key.
type Store interface {
	// Load reads the blob at key and unmarshals it into dest.
	// Returns false when the key is absent. A blob that exists but cannot
	// be decoded yields an *ErrDeserialization; callers are expected to
	// fall back to the entity's default value rather than propagate it.
	Load(ctx context.Context, key string, dest any) (bool, error)

	// Save marshals value and writes it under key, replacing any
	// previous blob.
	Save(ctx context.Context, key string, value any) error

	// Remove deletes the blob at key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}

// ErrDeserialization indicates a persisted blob exists but holds malformed
// data. The entity should be reset to its default value.
type ErrDeserialization struct {
	Key string
	Err error
}

func (e *ErrDeserialization) Error() string {
	return fmt.Sprintf("deserialize blob %q: %v", e.Key, e.Err)
}

func (e *ErrDeserialization) Unwrap() error { return e.Err }

// DefaultDBPath resolves the database file path in priority order:
// 1. LEARNAI_DB environment variable
// 2. $XDG_DATA_HOME/learnai/learnai.db
// 3. ~/.local/share/learnai/learnai.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEARNAI_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "learnai", "learnai.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
