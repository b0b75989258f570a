// Package authctx resolves caller identity. Requests carry an opaque
// bearer token; resolving it yields an explicit Principal, and any
// failure yields the anonymous principal rather than an error so
// public content stays reachable without credentials.
package authctx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// JWTProvider issues and resolves HS256 tokens. It is both the
// AuthContextProvider the services consume and the TokenIssuer the
// user service issues logins through.
type JWTProvider struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTProvider creates a provider signing with the given secret.
func NewJWTProvider(secret string, lifetime time.Duration) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a token for the given user.
func (p *JWTProvider) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Resolve maps a credential to a principal. Empty, malformed, expired
// or badly-signed tokens all resolve to the anonymous principal.
func (p *JWTProvider) Resolve(ctx context.Context, credential string) gallery.Principal {
	credential = strings.TrimSpace(strings.TrimPrefix(credential, "Bearer "))
	if credential == "" {
		return gallery.Anonymous()
	}

	var c claims
	token, err := jwt.ParseWithClaims(credential, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid || c.UserID <= 0 {
		return gallery.Anonymous()
	}
	return gallery.UserPrincipal(c.UserID)
}

var _ contracts.AuthContextProvider = (*JWTProvider)(nil)
