package application

import (
	"context"
	"errors"
	"strings"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
	"fotoshare/logging"
)

// TokenIssuer mints a credential for an authenticated user. The inverse
// of contracts.AuthContextProvider.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// UserService manages accounts: registration, login, and account
// removal via the cascade coordinator.
type UserService struct {
	users   contracts.UserRepository
	hasher  contracts.PasswordHasher
	issuer  TokenIssuer
	cascade *CascadeService
	logger  *logging.Logger
}

// NewUserService creates the user service.
func NewUserService(
	users contracts.UserRepository,
	hasher contracts.PasswordHasher,
	issuer TokenIssuer,
	cascade *CascadeService,
	logger *logging.Logger,
) *UserService {
	return &UserService{
		users:   users,
		hasher:  hasher,
		issuer:  issuer,
		cascade: cascade,
		logger:  logger.WithComponent("user"),
	}
}

// Register creates an account. Username and email must be unique.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*gallery.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, contracts.ErrInvalidInput
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, contracts.ErrAlreadyExists
	} else if !errors.Is(err, contracts.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, contracts.ErrAlreadyExists
	} else if !errors.Is(err, contracts.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &gallery.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Enabled:      true,
		Role:         "USER",
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", username)
	return user, nil
}

// Login verifies credentials and returns a bearer token. A wrong
// username and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, contracts.ErrNotFound) {
			return "", contracts.ErrForbidden
		}
		return "", err
	}
	if !user.Enabled || !s.hasher.Verify(user.PasswordHash, password) {
		return "", contracts.ErrForbidden
	}
	return s.issuer.Issue(user.ID)
}

// Get returns a user by identity.
func (s *UserService) Get(ctx context.Context, userID int64) (*gallery.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Delete removes the principal's own account and everything they own,
// through the cascade coordinator.
func (s *UserService) Delete(ctx context.Context, principal gallery.Principal, userID int64) error {
	if !principal.Is(userID) {
		return contracts.ErrForbidden
	}
	return s.cascade.DeleteUser(ctx, userID)
}
