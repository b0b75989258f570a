// Package storage provides the object-store implementations behind the
// FileStore and ThumbnailStore ports: a local-disk store and an
// S3-compatible store. Deletes are idempotent in both; an object that
// is already gone is success.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fotoshare/domain/contracts"
)

// DiskStore keeps binaries on the local filesystem under a base
// directory. Stored filenames are uuid-keyed so user-supplied names
// never touch the filesystem.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates the store, making the base directory if needed.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", baseDir, err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Save(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))

	f, err := os.Create(filepath.Join(s.baseDir, storedName))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", storedName, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write %s: %w", storedName, err)
	}
	return storedName, nil
}

func (s *DiskStore) Open(ctx context.Context, storedFilename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.baseDir, filepath.Base(storedFilename)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, contracts.ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", storedFilename, err)
	}
	return f, nil
}

func (s *DiskStore) Delete(ctx context.Context, storedFilename string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(storedFilename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", storedFilename, err)
	}
	return nil
}

// DiskThumbnailStore is a DiskStore variant satisfying the
// ThumbnailStore port, keyed by the thumbnail filename it is handed.
type DiskThumbnailStore struct {
	baseDir string
}

// NewDiskThumbnailStore creates the thumbnail store.
func NewDiskThumbnailStore(baseDir string) (*DiskThumbnailStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create thumbnail dir %s: %w", baseDir, err)
	}
	return &DiskThumbnailStore{baseDir: baseDir}, nil
}

func (s *DiskThumbnailStore) SaveThumbnail(ctx context.Context, thumbnailFilename string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.baseDir, filepath.Base(thumbnailFilename)))
	if err != nil {
		return fmt.Errorf("create thumbnail %s: %w", thumbnailFilename, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("write thumbnail %s: %w", thumbnailFilename, err)
	}
	return nil
}

func (s *DiskThumbnailStore) OpenThumbnail(ctx context.Context, thumbnailFilename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.baseDir, filepath.Base(thumbnailFilename)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, contracts.ErrNotFound
		}
		return nil, fmt.Errorf("open thumbnail %s: %w", thumbnailFilename, err)
	}
	return f, nil
}

func (s *DiskThumbnailStore) DeleteThumbnail(ctx context.Context, thumbnailFilename string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(thumbnailFilename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete thumbnail %s: %w", thumbnailFilename, err)
	}
	return nil
}

var (
	_ contracts.FileStore      = (*DiskStore)(nil)
	_ contracts.ThumbnailStore = (*DiskThumbnailStore)(nil)
)
