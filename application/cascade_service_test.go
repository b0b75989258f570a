package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
	"fotoshare/test/mocks"
)

type cascadeFixture struct {
	svc      *CascadeService
	users    *mocks.MockUserRepository
	photos   *mocks.MockPhotoRepository
	albums   *mocks.MockAlbumRepository
	shares   *mocks.MockShareRepository
	comments *mocks.MockCommentaryRepository
	orphans  *mocks.MockOrphanFileRepository
	files    *mocks.MockFileStore
	thumbs   *mocks.MockThumbnailStore
	tx       *mocks.PassthroughTxRunner
}

func newCascadeFixture() *cascadeFixture {
	f := &cascadeFixture{
		users:    &mocks.MockUserRepository{},
		photos:   &mocks.MockPhotoRepository{},
		albums:   &mocks.MockAlbumRepository{},
		shares:   &mocks.MockShareRepository{},
		comments: &mocks.MockCommentaryRepository{},
		orphans:  &mocks.MockOrphanFileRepository{},
		files:    &mocks.MockFileStore{},
		thumbs:   &mocks.MockThumbnailStore{},
		tx:       &mocks.PassthroughTxRunner{},
	}
	f.svc = NewCascadeService(
		f.users, f.photos, f.albums, f.shares, f.comments, f.orphans,
		f.files, f.thumbs, f.tx,
		logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "stderr"}),
	)
	return f
}

func storedPhoto(id, ownerID int64) *gallery.Photo {
	return &gallery.Photo{
		ID:                id,
		OwnerID:           ownerID,
		Visibility:        gallery.VisibilityPrivate,
		StoredFilename:    "stored-photo.jpg",
		ThumbnailFilename: "stored-photo-thumb.jpg",
	}
}

func TestCascadeService_DeletePhoto(t *testing.T) {
	t.Run("removes dependents before the photo row", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		photo := storedPhoto(10, 1)

		var order []string
		step := func(name string) func(mock.Arguments) {
			return func(mock.Arguments) { order = append(order, name) }
		}

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		f.comments.On("DeleteByPhoto", ctx, int64(10)).Run(step("comments")).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, int64(10)).Run(step("shares")).Return(nil)
		f.albums.On("RemovePhotoEverywhere", ctx, int64(10)).Run(step("albums")).Return(nil)
		f.orphans.On("Record", ctx, mock.AnythingOfType("*gallery.OrphanFile")).Run(step("orphan")).Return(nil)
		f.photos.On("Delete", ctx, int64(10)).Run(step("photo")).Return(nil)
		f.files.On("Delete", ctx, "stored-photo.jpg").Return(nil)
		f.thumbs.On("DeleteThumbnail", ctx, "stored-photo-thumb.jpg").Return(nil)
		f.orphans.On("Delete", ctx, mock.AnythingOfType("int64")).Return(nil)

		err := f.svc.DeletePhoto(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, []string{"comments", "shares", "albums", "orphan", "orphan", "photo"}, order)
		assert.Equal(t, 1, f.tx.Calls)
		f.files.AssertCalled(t, "Delete", ctx, "stored-photo.jpg")
		f.thumbs.AssertCalled(t, "DeleteThumbnail", ctx, "stored-photo-thumb.jpg")
	})

	t.Run("missing photo fails before any mutation", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()

		f.photos.On("GetByID", ctx, int64(999)).Return(nil, contracts.ErrNotFound)

		err := f.svc.DeletePhoto(ctx, 999)
		assert.ErrorIs(t, err, contracts.ErrNotFound)
		f.comments.AssertNotCalled(t, "DeleteByPhoto", mock.Anything, mock.Anything)
		f.shares.AssertNotCalled(t, "DeleteByPhoto", mock.Anything, mock.Anything)
		f.photos.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("dependent failure aborts and skips storage", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		photo := storedPhoto(10, 1)
		boom := errors.New("disk full")

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		f.comments.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, int64(10)).Return(boom)

		err := f.svc.DeletePhoto(ctx, 10)
		assert.ErrorIs(t, err, boom)
		f.photos.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.thumbs.AssertNotCalled(t, "DeleteThumbnail", mock.Anything, mock.Anything)
	})

	t.Run("commit failure skips storage cleanup", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		photo := storedPhoto(10, 1)
		f.tx.FailCommit = errors.New("commit failed")

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		f.comments.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.albums.On("RemovePhotoEverywhere", ctx, int64(10)).Return(nil)
		f.orphans.On("Record", ctx, mock.AnythingOfType("*gallery.OrphanFile")).Return(nil)
		f.photos.On("Delete", ctx, int64(10)).Return(nil)

		err := f.svc.DeletePhoto(ctx, 10)
		assert.Error(t, err)
		f.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.thumbs.AssertNotCalled(t, "DeleteThumbnail", mock.Anything, mock.Anything)
	})

	t.Run("storage failure leaves the orphan queued", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		photo := &gallery.Photo{ID: 10, OwnerID: 1, StoredFilename: "stored-photo.jpg"}

		f.photos.On("GetByID", ctx, int64(10)).Return(photo, nil)
		f.comments.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.albums.On("RemovePhotoEverywhere", ctx, int64(10)).Return(nil)
		f.orphans.On("Record", ctx, mock.AnythingOfType("*gallery.OrphanFile")).Return(nil)
		f.photos.On("Delete", ctx, int64(10)).Return(nil)
		f.files.On("Delete", ctx, "stored-photo.jpg").Return(errors.New("bucket unreachable"))

		err := f.svc.DeletePhoto(ctx, 10)
		assert.NoError(t, err, "a committed cascade must not fail on storage cleanup")
		f.orphans.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCascadeService_DeleteUser(t *testing.T) {
	t.Run("full cascade order", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		user := &gallery.User{ID: 1, Username: "ana"}
		photoA := storedPhoto(10, 1)
		photoB := &gallery.Photo{ID: 11, OwnerID: 1, StoredFilename: "b.jpg"}

		var order []string
		step := func(name string) func(mock.Arguments) {
			return func(mock.Arguments) { order = append(order, name) }
		}

		f.users.On("GetByID", ctx, int64(1)).Return(user, nil)
		f.comments.On("DeleteByAuthor", ctx, int64(1)).Run(step("authored comments")).Return(nil)
		f.shares.On("DeleteByUser", ctx, int64(1)).Run(step("received shares")).Return(nil)
		f.photos.On("ListByOwner", ctx, int64(1)).Return([]*gallery.Photo{photoA, photoB}, nil)
		f.comments.On("DeleteByPhoto", ctx, mock.AnythingOfType("int64")).Run(step("photo comments")).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, mock.AnythingOfType("int64")).Run(step("photo shares")).Return(nil)
		f.albums.On("RemovePhotoEverywhere", ctx, mock.AnythingOfType("int64")).Run(step("photo links")).Return(nil)
		f.orphans.On("Record", ctx, mock.AnythingOfType("*gallery.OrphanFile")).Return(nil)
		f.photos.On("Delete", ctx, mock.AnythingOfType("int64")).Run(step("photo row")).Return(nil)
		f.albums.On("DeleteByOwner", ctx, int64(1)).Run(step("albums")).Return(nil)
		f.users.On("Delete", ctx, int64(1)).Run(step("user row")).Return(nil)
		f.files.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)
		f.thumbs.On("DeleteThumbnail", ctx, mock.AnythingOfType("string")).Return(nil)
		f.orphans.On("Delete", ctx, mock.AnythingOfType("int64")).Return(nil)

		err := f.svc.DeleteUser(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, []string{
			"authored comments", "received shares",
			"photo comments", "photo shares", "photo links", "photo row",
			"photo comments", "photo shares", "photo links", "photo row",
			"albums", "user row",
		}, order)
		assert.Equal(t, 1, f.tx.Calls)
		// Three stored objects across both photos: two originals, one thumbnail.
		f.files.AssertNumberOfCalls(t, "Delete", 2)
		f.thumbs.AssertNumberOfCalls(t, "DeleteThumbnail", 1)
	})

	t.Run("missing user fails before any mutation", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()

		f.users.On("GetByID", ctx, int64(999)).Return(nil, contracts.ErrNotFound)

		err := f.svc.DeleteUser(ctx, 999)
		assert.ErrorIs(t, err, contracts.ErrNotFound)
		f.comments.AssertNotCalled(t, "DeleteByAuthor", mock.Anything, mock.Anything)
		f.shares.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("photo cascade failure rolls the whole user delete back", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		user := &gallery.User{ID: 1, Username: "ana"}
		photo := storedPhoto(10, 1)
		boom := errors.New("constraint violation")

		f.users.On("GetByID", ctx, int64(1)).Return(user, nil)
		f.comments.On("DeleteByAuthor", ctx, int64(1)).Return(nil)
		f.shares.On("DeleteByUser", ctx, int64(1)).Return(nil)
		f.photos.On("ListByOwner", ctx, int64(1)).Return([]*gallery.Photo{photo}, nil)
		f.comments.On("DeleteByPhoto", ctx, int64(10)).Return(nil)
		f.shares.On("DeleteByPhoto", ctx, int64(10)).Return(boom)

		err := f.svc.DeleteUser(ctx, 1)
		assert.ErrorIs(t, err, boom)
		f.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("user without stored binaries touches no storage", func(t *testing.T) {
		f := newCascadeFixture()
		ctx := context.Background()
		user := &gallery.User{ID: 2, Username: "ben"}

		f.users.On("GetByID", ctx, int64(2)).Return(user, nil)
		f.comments.On("DeleteByAuthor", ctx, int64(2)).Return(nil)
		f.shares.On("DeleteByUser", ctx, int64(2)).Return(nil)
		f.photos.On("ListByOwner", ctx, int64(2)).Return([]*gallery.Photo{}, nil)
		f.albums.On("DeleteByOwner", ctx, int64(2)).Return(nil)
		f.users.On("Delete", ctx, int64(2)).Return(nil)

		err := f.svc.DeleteUser(ctx, 2)
		assert.NoError(t, err)
		f.orphans.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		f.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
