package authctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTProvider_RoundTrip(t *testing.T) {
	provider := NewJWTProvider("test-secret", time.Hour)

	token, err := provider.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	principal := provider.Resolve(context.Background(), "Bearer "+token)
	assert.True(t, principal.Authenticated())
	id, ok := principal.UserID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestJWTProvider_BadCredentialsResolveAnonymous(t *testing.T) {
	provider := NewJWTProvider("test-secret", time.Hour)

	tests := []struct {
		name       string
		credential string
	}{
		{"empty", ""},
		{"garbage", "Bearer not-a-token"},
		{"missing scheme garbage", "nonsense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := provider.Resolve(context.Background(), tt.credential)
			assert.False(t, principal.Authenticated())
		})
	}
}

func TestJWTProvider_WrongSecretResolvesAnonymous(t *testing.T) {
	issuer := NewJWTProvider("secret-a", time.Hour)
	verifier := NewJWTProvider("secret-b", time.Hour)

	token, err := issuer.Issue(42)
	assert.NoError(t, err)

	principal := verifier.Resolve(context.Background(), "Bearer "+token)
	assert.False(t, principal.Authenticated())
}

func TestJWTProvider_ExpiredTokenResolvesAnonymous(t *testing.T) {
	provider := NewJWTProvider("test-secret", -time.Minute)

	token, err := provider.Issue(42)
	assert.NoError(t, err)

	principal := provider.Resolve(context.Background(), "Bearer "+token)
	assert.False(t, principal.Authenticated())
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, hasher.Verify(hash, "correct horse"))
	assert.False(t, hasher.Verify(hash, "wrong horse"))
}
