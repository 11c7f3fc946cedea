package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayhub/listings-api/internal/core/domain"
	"github.com/stayhub/listings-api/internal/core/ports"
)

const bcryptCost = 10

// tokenClaims is the JWT payload issued at login.
type tokenClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// AuthService implements registration, login and token lifecycle.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

// Register creates a new account with a bcrypt-hashed password. The role set
// is derived from the username: the reserved name "admin" gets the admin
// role, everyone else gets "user".
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        domain.DefaultRoles(username),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates the username/password pair and issues a signed token.
// Unknown usernames and wrong passwords fail identically so the response
// never reveals which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Username, user.Roles)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Verify checks the token's signature and expiry and returns its claims.
// Expired tokens are reported as domain.ErrTokenExpired so callers can clear
// stored credentials or attempt a refresh; any other failure is a generic
// domain.ErrUnauthenticated.
func (s *AuthService) Verify(token string) (*ports.Claims, error) {
	claims, err := s.parse(token, false)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrUnauthenticated
	}
	return toClaims(claims), nil
}

// Refresh accepts an expired-but-validly-signed token and re-issues one with
// the same identity and roles and a fresh expiry window.
func (s *AuthService) Refresh(token string) (string, error) {
	claims, err := s.parse(token, true)
	if err != nil {
		return "", domain.ErrUnauthenticated
	}
	return s.generateToken(claims.Subject, claims.Username, claims.Roles)
}

func (s *AuthService) generateToken(userID, username string, roles []string) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parse verifies the signature and, unless ignoreExpiry is set, the time
// claims. The signing method is pinned to HS256.
func (s *AuthService) parse(token string, ignoreExpiry bool) (*tokenClaims, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}

	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if ignoreExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, keyFunc, opts...)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

func toClaims(c *tokenClaims) *ports.Claims {
	out := &ports.Claims{
		UserID:   c.Subject,
		Username: c.Username,
		Roles:    c.Roles,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
