package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/listings-api/internal/api/metrics"
	"github.com/stayhub/listings-api/internal/core/domain"
	"github.com/stayhub/listings-api/internal/core/ports"
)

// LoginLimiter throttles repeated login attempts per username.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
}

// AuthHandler handles registration, login, refresh and logout.
type AuthHandler struct {
	authService ports.AuthService
	limiter     LoginLimiter
	cookieName  string
	cookieTTL   time.Duration
}

func NewAuthHandler(authService ports.AuthService, limiter LoginLimiter, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=4,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type refreshResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a session token. The token is
// also set as an HTTP-only cookie so browser clients work without holding
// the token in script-accessible storage.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request().Context(), req.Username)
		if err == nil && !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
		}
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	h.setAuthCookie(c, token, h.cookieTTL)
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Refresh re-issues a token from an expired-but-validly-signed one. The old
// token comes from the same transports as authenticated requests.
//
// @Summary      Refresh an expired session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  refreshResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, err := tokenFromRequest(c, h.cookieName)
	if err != nil {
		return err
	}

	newToken, err := h.authService.Refresh(token)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, newToken, h.cookieTTL)
	return c.JSON(http.StatusOK, refreshResponse{Token: newToken})
}

// Logout clears the auth cookie. Tokens are stateless, so this is the only
// server-side effect; expiry remains the real invalidation mechanism.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.setAuthCookie(c, "", -time.Hour)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string, ttl time.Duration) {
	if h.cookieName == "" {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
