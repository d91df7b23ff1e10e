package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	// DocFilePermissions defines the permissions for run documents
	DocFilePermissions = 0644
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// DocumentStore reads and writes the JSON run documents (commit lists,
// reports, skip lists, exports). Writes are atomic and lock-guarded.
type DocumentStore interface {
	ReadJSON(ctx context.Context, path string, v any) error
	WriteJSON(ctx context.Context, path string, v any) error
}

// JSONDocumentStore implements DocumentStore over an afero filesystem.
type JSONDocumentStore struct {
	fs afero.Fs
}

// NewJSONDocumentStore creates a new JSON document store.
func NewJSONDocumentStore(fs afero.Fs) *JSONDocumentStore {
	return &JSONDocumentStore{fs: fs}
}

// WriteJSON marshals v and writes it to path atomically under an exclusive
// file lock.
func (s *JSONDocumentStore) WriteJSON(ctx context.Context, path string, v any) error {
	lock := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := s.acquireLock(lockCtx, lock, lock.TryLock)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock within timeout")
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			// Log error but don't fail the operation
			fmt.Fprintf(os.Stderr, "warning: failed to unlock file: %v\n", unlockErr)
		}
	}()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	// Write atomically using temp file
	tempFile := path + ".tmp"
	if err := afero.WriteFile(s.fs, tempFile, data, DocFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp document: %w", err)
	}
	if err := s.fs.Rename(tempFile, path); err != nil {
		if removeErr := s.fs.Remove(tempFile); removeErr != nil {
			// Temp file cleanup is best effort
			fmt.Fprintf(os.Stderr, "warning: failed to remove temp file: %v\n", removeErr)
		}
		return fmt.Errorf("failed to rename document: %w", err)
	}
	return nil
}

// ReadJSON reads the document at path under a shared lock and unmarshals it
// into v.
func (s *JSONDocumentStore) ReadJSON(ctx context.Context, path string, v any) error {
	lock := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := s.acquireLock(lockCtx, lock, lock.TryRLock)
	if err != nil {
		return fmt.Errorf("failed to acquire shared lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire shared lock within timeout")
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to unlock file: %v\n", unlockErr)
		}
	}()
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document not found: %s", path)
		}
		return fmt.Errorf("failed to read document: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

// acquireLock polls the given try function until it succeeds or the context
// expires.
func (s *JSONDocumentStore) acquireLock(
	ctx context.Context,
	_ *flock.Flock,
	try func() (bool, error),
) (bool, error) {
	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		locked, err := try()
		if err != nil {
			return false, err
		}
		if locked {
			return true, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
}
