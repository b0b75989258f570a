package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fotoshare/domain/gallery"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*gallery.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*gallery.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*gallery.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *gallery.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*gallery.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPhotoRepository implements PhotoRepository for testing
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) GetByID(ctx context.Context, photoID int64) (*gallery.Photo, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*gallery.Photo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListAccessible(ctx context.Context, principal gallery.Principal) ([]*gallery.Photo, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Save(ctx context.Context, photo *gallery.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, photoID int64) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

// MockAlbumRepository implements AlbumRepository for testing
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) GetByID(ctx context.Context, albumID int64) (*gallery.Album, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.Album), args.Error(1)
}

func (m *MockAlbumRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*gallery.Album, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.Album), args.Error(1)
}

func (m *MockAlbumRepository) Save(ctx context.Context, album *gallery.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, albumID int64) error {
	args := m.Called(ctx, albumID)
	return args.Error(0)
}

func (m *MockAlbumRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockAlbumRepository) AddPhoto(ctx context.Context, albumID, photoID int64) error {
	args := m.Called(ctx, albumID, photoID)
	return args.Error(0)
}

func (m *MockAlbumRepository) RemovePhoto(ctx context.Context, albumID, photoID int64) error {
	args := m.Called(ctx, albumID, photoID)
	return args.Error(0)
}

func (m *MockAlbumRepository) ListPhotos(ctx context.Context, albumID int64) ([]*gallery.Photo, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.Photo), args.Error(1)
}

func (m *MockAlbumRepository) RemovePhotoEverywhere(ctx context.Context, photoID int64) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

// MockShareRepository implements ShareRepository for testing
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) GetByPhotoAndUser(ctx context.Context, photoID, userID int64) (*gallery.Share, error) {
	args := m.Called(ctx, photoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.Share), args.Error(1)
}

func (m *MockShareRepository) ListByPhoto(ctx context.Context, photoID int64) ([]*gallery.Share, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.Share), args.Error(1)
}

func (m *MockShareRepository) Save(ctx context.Context, share *gallery.Share) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockShareRepository) DeleteByPhotoAndUser(ctx context.Context, photoID, userID int64) error {
	args := m.Called(ctx, photoID, userID)
	return args.Error(0)
}

func (m *MockShareRepository) DeleteByPhoto(ctx context.Context, photoID int64) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

func (m *MockShareRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCommentaryRepository implements CommentaryRepository for testing
type MockCommentaryRepository struct {
	mock.Mock
}

func (m *MockCommentaryRepository) GetByID(ctx context.Context, commentID int64) (*gallery.Commentary, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.Commentary), args.Error(1)
}

func (m *MockCommentaryRepository) ListByPhoto(ctx context.Context, photoID int64) ([]*gallery.Commentary, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.Commentary), args.Error(1)
}

func (m *MockCommentaryRepository) Save(ctx context.Context, comment *gallery.Commentary) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentaryRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentaryRepository) DeleteByPhoto(ctx context.Context, photoID int64) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

func (m *MockCommentaryRepository) DeleteByAuthor(ctx context.Context, authorID int64) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

// MockOrphanFileRepository implements OrphanFileRepository for testing
type MockOrphanFileRepository struct {
	mock.Mock
}

func (m *MockOrphanFileRepository) Record(ctx context.Context, orphan *gallery.OrphanFile) error {
	args := m.Called(ctx, orphan)
	return args.Error(0)
}

func (m *MockOrphanFileRepository) List(ctx context.Context) ([]*gallery.OrphanFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gallery.OrphanFile), args.Error(1)
}

func (m *MockOrphanFileRepository) Delete(ctx context.Context, orphanID int64) error {
	args := m.Called(ctx, orphanID)
	return args.Error(0)
}
