package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/infrastructure/authctx"
	"fotoshare/logging"
	"fotoshare/test/mocks"
)

type stubIssuer struct {
	token string
}

func (s stubIssuer) Issue(userID int64) (string, error) {
	return s.token, nil
}

func newUserFixture() (*UserService, *mocks.MockUserRepository, *cascadeFixture) {
	users := &mocks.MockUserRepository{}
	cascade := newCascadeFixture()
	cascade.users = users
	cascade.svc = NewCascadeService(
		users, cascade.photos, cascade.albums, cascade.shares, cascade.comments,
		cascade.orphans, cascade.files, cascade.thumbs, cascade.tx,
		logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "stderr"}),
	)

	svc := NewUserService(
		users,
		authctx.NewBcryptHasher(),
		stubIssuer{token: "issued-token"},
		cascade.svc,
		logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "stderr"}),
	)
	return svc, users, cascade
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates an enabled user with a hashed password", func(t *testing.T) {
		svc, users, _ := newUserFixture()
		ctx := context.Background()

		users.On("GetByUsername", ctx, "ana").Return(nil, contracts.ErrNotFound)
		users.On("GetByEmail", ctx, "ana@example.com").Return(nil, contracts.ErrNotFound)
		users.On("Save", ctx, mock.AnythingOfType("*gallery.User")).Return(nil)

		user, err := svc.Register(ctx, "ana", "ana@example.com", "hunter2")
		assert.NoError(t, err)
		assert.True(t, user.Enabled)
		assert.Equal(t, "USER", user.Role)
		assert.NotEqual(t, "hunter2", user.PasswordHash)
		assert.True(t, authctx.NewBcryptHasher().Verify(user.PasswordHash, "hunter2"))
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, users, _ := newUserFixture()
		ctx := context.Background()

		users.On("GetByUsername", ctx, "ana").Return(&gallery.User{ID: 1, Username: "ana"}, nil)

		_, err := svc.Register(ctx, "ana", "other@example.com", "hunter2")
		assert.ErrorIs(t, err, contracts.ErrAlreadyExists)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, users, _ := newUserFixture()
		ctx := context.Background()

		users.On("GetByUsername", ctx, "ben").Return(nil, contracts.ErrNotFound)
		users.On("GetByEmail", ctx, "ana@example.com").Return(&gallery.User{ID: 1}, nil)

		_, err := svc.Register(ctx, "ben", "ana@example.com", "hunter2")
		assert.ErrorIs(t, err, contracts.ErrAlreadyExists)
	})

	t.Run("blank fields", func(t *testing.T) {
		svc, _, _ := newUserFixture()

		_, err := svc.Register(context.Background(), "  ", "a@b.c", "x")
		assert.ErrorIs(t, err, contracts.ErrInvalidInput)
	})
}

func TestUserService_Login(t *testing.T) {
	hasher := authctx.NewBcryptHasher()
	hash, _ := hasher.Hash("hunter2")

	t.Run("valid credentials yield a token", func(t *testing.T) {
		svc, users, _ := newUserFixture()
		ctx := context.Background()

		users.On("GetByUsername", ctx, "ana").
			Return(&gallery.User{ID: 1, Username: "ana", PasswordHash: hash, Enabled: true}, nil)

		token, err := svc.Login(ctx, "ana", "hunter2")
		assert.NoError(t, err)
		assert.Equal(t, "issued-token", token)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		svc, users, _ := newUserFixture()
		ctx := context.Background()

		users.On("GetByUsername", ctx, "ana").
			Return(&gallery.User{ID: 1, Username: "ana", PasswordHash: hash, Enabled: true}, nil)
		users.On("GetByUsername", ctx, "ghost").Return(nil, contracts.ErrNotFound)

		_, errWrongPassword := svc.Login(ctx, "ana", "wrong")
		_, errUnknownUser := svc.Login(ctx, "ghost", "hunter2")
		assert.ErrorIs(t, errWrongPassword, contracts.ErrForbidden)
		assert.ErrorIs(t, errUnknownUser, contracts.ErrForbidden)
	})

	t.Run("disabled account cannot log in", func(t *testing.T) {
		svc, users, _ := newUserFixture()
		ctx := context.Background()

		users.On("GetByUsername", ctx, "ana").
			Return(&gallery.User{ID: 1, Username: "ana", PasswordHash: hash, Enabled: false}, nil)

		_, err := svc.Login(ctx, "ana", "hunter2")
		assert.ErrorIs(t, err, contracts.ErrForbidden)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("only the account holder may delete", func(t *testing.T) {
		svc, _, cascade := newUserFixture()

		err := svc.Delete(context.Background(), gallery.UserPrincipal(2), 1)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
		assert.Zero(t, cascade.tx.Calls)

		err = svc.Delete(context.Background(), gallery.Anonymous(), 1)
		assert.ErrorIs(t, err, contracts.ErrForbidden)
	})

	t.Run("self delete runs the cascade", func(t *testing.T) {
		svc, users, cascade := newUserFixture()
		ctx := context.Background()

		users.On("GetByID", ctx, int64(1)).Return(&gallery.User{ID: 1, Username: "ana"}, nil)
		cascade.comments.On("DeleteByAuthor", ctx, int64(1)).Return(nil)
		cascade.shares.On("DeleteByUser", ctx, int64(1)).Return(nil)
		cascade.photos.On("ListByOwner", ctx, int64(1)).Return([]*gallery.Photo{}, nil)
		cascade.albums.On("DeleteByOwner", ctx, int64(1)).Return(nil)
		users.On("Delete", ctx, int64(1)).Return(nil)

		err := svc.Delete(ctx, gallery.UserPrincipal(1), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, cascade.tx.Calls)
	})
}
