package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goveggie/config"
	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/service"
	mockService "goveggie/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService) {
	t.Helper()

	tokenService := mockService.NewMockTokenService(t)
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: "test-secret",
			APIKey:    "test-api-key",
		},
	}

	return NewAuthMiddleware(tokenService, cfg), tokenService
}

func newTestContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, tokenService := newTestAuthMiddleware(t)
	tokenService.EXPECT().ValidateToken("good-token").
		Return(&service.Claims{UserID: 42, Role: entity.RoleUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c := newTestContext(req)

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), CurrentUserID(c))
	assert.Equal(t, entity.RoleUser, CurrentRole(c))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	c := newTestContext(httptest.NewRequest(http.MethodGet, "/favorites", nil))

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	c := newTestContext(req)

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m, tokenService := newTestAuthMiddleware(t)
	tokenService.EXPECT().ValidateToken("expired").
		Return(nil, errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	c := newTestContext(req)

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestPublic_BearerTokenAttachesPrincipal(t *testing.T) {
	m, tokenService := newTestAuthMiddleware(t)
	tokenService.EXPECT().ValidateToken("good-token").
		Return(&service.Claims{UserID: 7, Role: entity.RoleUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c := newTestContext(req)

	err := m.Public(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, int64(7), CurrentUserID(c))
}

func TestPublic_BadBearerIsNotSilentlyDowngraded(t *testing.T) {
	// A client that sends a Bearer token expects it to be honored; a bad
	// token must fail, not fall through to API key handling.
	m, tokenService := newTestAuthMiddleware(t)
	tokenService.EXPECT().ValidateToken("bad").
		Return(nil, errors.New("signature is invalid"))

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	req.Header.Set("X-API-Key", "test-api-key")
	c := newTestContext(req)

	err := m.Public(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestPublic_APIKeyHeaderGrantsGuest(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	req.Header.Set("X-API-Key", "test-api-key")
	c := newTestContext(req)

	err := m.Public(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, int64(0), CurrentUserID(c))
	assert.Equal(t, entity.RoleGuest, CurrentRole(c))
}

func TestPublic_APIKeyQueryParamGrantsGuest(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/restaurants?api_key=test-api-key", nil)
	c := newTestContext(req)

	err := m.Public(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuest, CurrentRole(c))
}

func TestPublic_WrongAPIKeyOnPost(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/social-login", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	c := newTestContext(req)

	err := m.Public(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestPublic_AnonymousGetIsGuest(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	c := newTestContext(httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	err := m.Public(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, int64(0), CurrentUserID(c))
	assert.Equal(t, entity.RoleGuest, CurrentRole(c))
}

func TestPublic_AnonymousPostIsRejected(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	c := newTestContext(httptest.NewRequest(http.MethodPost, "/auth/social-login", nil))

	err := m.Public(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestRequireAdmin_AllowsAdminRoles(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin} {
		c := newTestContext(httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
		c.Set(ContextRole, role)

		err := m.RequireAdmin(okHandler)(c)
		assert.NoError(t, err)
	}
}

func TestRequireAdmin_RejectsUserAndGuest(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	for _, role := range []entity.Role{entity.RoleUser, entity.RoleGuest} {
		c := newTestContext(httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
		c.Set(ContextRole, role)

		err := m.RequireAdmin(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
	}
}

func TestRequireAdmin_MissingRole(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	c := newTestContext(httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	err := m.RequireAdmin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
}
