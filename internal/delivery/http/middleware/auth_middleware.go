package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"goveggie/config"
	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated principal.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenService service.TokenService
	apiKey       []byte
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, cfg *config.Config) *AuthMiddleware {
	var apiKey []byte
	if cfg.Auth != nil {
		apiKey = []byte(cfg.Auth.APIKey)
	}

	return &AuthMiddleware{tokenService: tokenService, apiKey: apiKey}
}

// Authenticate validates the Bearer token and attaches the principal to the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.bearerClaims(c)
		if err != nil {
			return err
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		return next(c)
	}
}

// Public admits a valid Bearer token, the static API key, or an anonymous
// GET. A token attaches the real principal; the other two yield a guest with
// read access. A present-but-invalid token always fails rather than being
// downgraded to a guest.
func (m *AuthMiddleware) Public(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if hasBearer(c) {
			claims, err := m.bearerClaims(c)
			if err != nil {
				return err
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}

		if m.matchesAPIKey(c) || c.Request().Method == http.MethodGet {
			c.Set(ContextUserID, int64(0))
			c.Set(ContextRole, entity.RoleGuest)

			return next(c)
		}

		return domainerrors.ErrNotAuthenticated
	}
}

// RequireAdmin checks the role attached by Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(ContextRole).(entity.Role)
		if !ok || !role.IsAdmin() {
			return domainerrors.ErrAdminOnly
		}

		return next(c)
	}
}

func (m *AuthMiddleware) bearerClaims(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token")
	}

	claims, err := m.tokenService.ValidateToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

func (m *AuthMiddleware) matchesAPIKey(c echo.Context) bool {
	if len(m.apiKey) == 0 {
		return false
	}

	candidate := c.Request().Header.Get("X-API-Key")
	if candidate == "" {
		candidate = c.QueryParam("api_key")
	}
	if candidate == "" {
		return false
	}

	return subtle.ConstantTimeCompare(m.apiKey, []byte(candidate)) == 1
}

func hasBearer(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
}

// CurrentUserID returns the authenticated user ID, or 0 for a guest.
func CurrentUserID(c echo.Context) int64 {
	if id, ok := c.Get(ContextUserID).(int64); ok {
		return id
	}

	return 0
}

// CurrentRole returns the authenticated role, defaulting to guest.
func CurrentRole(c echo.Context) entity.Role {
	if role, ok := c.Get(ContextRole).(entity.Role); ok {
		return role
	}

	return entity.RoleGuest
}
