// Package identity derives the effective user id for a request.
//
// Priority order: a verified, unexpired bearer token wins; otherwise a
// non-empty legacy X-User-Id header is taken verbatim; otherwise the
// anonymous id. Invalid tokens are demoted silently instead of being
// rejected, so a client with a stale token degrades to the next tier
// rather than getting locked out.
package identity

import (
	"strings"
	"time"

	"github.com/LSkevi/PieTracker/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultAnonymousID is used when the config leaves anonymous_id empty.
const DefaultAnonymousID = "public"

// Claims is the JWT payload; the subject carries the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Resolver verifies bearer tokens and applies the identity fallback chain.
type Resolver struct {
	secret      []byte
	issuer      string
	tokenTTL    time.Duration
	anonymousID string
}

func NewResolver(cfg config.AuthConfig) *Resolver {
	ttlHours := cfg.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	anon := cfg.AnonymousID
	if anon == "" {
		anon = DefaultAnonymousID
	}
	return &Resolver{
		secret:      []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		tokenTTL:    time.Duration(ttlHours) * time.Hour,
		anonymousID: anon,
	}
}

// AnonymousID returns the fixed id assigned when no credentials are supplied.
func (r *Resolver) AnonymousID() string {
	return r.anonymousID
}

// IssueToken signs a token whose subject is the given user id.
func (r *Resolver) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    r.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(r.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}

// Verify parses and validates a raw token string, returning the subject.
func (r *Resolver) Verify(tokenStr string) (string, bool) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", false
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return "", false
	}
	return claims.Subject, true
}

// Resolve returns exactly one user id for the given credential headers.
// It never fails: a broken token falls through to the header, a missing
// header falls through to the anonymous id. Once a token verifies, the
// header is ignored entirely so a logged-in client cannot spoof another
// identity with X-User-Id.
func (r *Resolver) Resolve(authorizationHeader, legacyHeader string) string {
	if tokenStr := bearerToken(authorizationHeader); tokenStr != "" {
		if sub, ok := r.Verify(tokenStr); ok {
			return sub
		}
		// invalid token: demote silently to the next tier
	}

	if id := strings.TrimSpace(legacyHeader); id != "" {
		return id
	}

	return r.anonymousID
}

func bearerToken(authorizationHeader string) string {
	if authorizationHeader == "" {
		return ""
	}
	parts := strings.SplitN(authorizationHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
