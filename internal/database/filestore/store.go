// Package filestore keeps the drawing session in a single JSON file, written
// atomically by rename.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

const (
	dirPermission  = 0o755
	filePermission = 0o600

	logMsgMalformed = "Saved session is malformed, ignoring"
)

// Store implements repository.SessionStore on the local filesystem.
type Store struct {
	dir string
	key string
}

// New returns a store writing <dir>/<key>.json. The directory is created on demand.
func New(dir, key string) *Store {
	return &Store{dir: dir, key: key}
}

// Path is the file backing the store.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Save replaces the file contents atomically.
func (s *Store) Save(ctx context.Context, state domain.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := repository.EncodeSession(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(s.dir, dirPermission); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePermission); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Load returns nil when the file is missing or unreadable as a session.
func (s *Store) Load(ctx context.Context) (*domain.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	state := repository.DecodeSession(data)
	if state == nil {
		logger.FromContext(ctx).Warn(logMsgMalformed, "path", s.Path())
	}
	return state, nil
}

// Clear deletes the file. A missing file is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Ping checks that the directory can be created and written.
func (s *Store) Ping(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, dirPermission); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	f, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

var _ repository.SessionStore = (*Store)(nil)
