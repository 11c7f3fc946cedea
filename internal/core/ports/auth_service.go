package ports

import (
	"context"
	"time"

	"github.com/stayhub/listings-api/internal/core/domain"
)

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID    string
	Username  string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasRole reports whether the claims carry the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthService defines registration, login and token lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	TokenVerifier
	// Refresh re-issues a token from an expired-but-validly-signed one.
	// Only the signature is checked; the expiry claim is ignored.
	Refresh(token string) (string, error)
}

// TokenVerifier is the narrow interface the auth middleware depends on.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}
