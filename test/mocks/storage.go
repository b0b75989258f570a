package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileStore implements FileStore for testing
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	args := m.Called(ctx, originalFilename, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, storedFilename string) (io.ReadCloser, error) {
	args := m.Called(ctx, storedFilename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, storedFilename string) error {
	args := m.Called(ctx, storedFilename)
	return args.Error(0)
}

// MockThumbnailStore implements ThumbnailStore for testing
type MockThumbnailStore struct {
	mock.Mock
}

func (m *MockThumbnailStore) SaveThumbnail(ctx context.Context, thumbnailFilename string, r io.Reader) error {
	args := m.Called(ctx, thumbnailFilename, r)
	return args.Error(0)
}

func (m *MockThumbnailStore) OpenThumbnail(ctx context.Context, thumbnailFilename string) (io.ReadCloser, error) {
	args := m.Called(ctx, thumbnailFilename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockThumbnailStore) DeleteThumbnail(ctx context.Context, thumbnailFilename string) error {
	args := m.Called(ctx, thumbnailFilename)
	return args.Error(0)
}

// PassthroughTxRunner runs the transactional function directly, with no
// real transaction behind it. FailBefore simulates a transaction that
// cannot start; FailCommit simulates a commit failure after fn ran.
type PassthroughTxRunner struct {
	FailBefore error
	FailCommit error
	Calls      int
}

func (t *PassthroughTxRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if t.FailBefore != nil {
		return t.FailBefore
	}
	if err := fn(ctx); err != nil {
		return err
	}
	return t.FailCommit
}
