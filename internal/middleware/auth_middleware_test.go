package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primegate_backend/internal/model"
	"primegate_backend/internal/storage"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupAuthApp(t *testing.T) (*fiber.App, *storage.MemStorage) {
	t.Helper()
	mem := storage.NewMemStorage()
	Init(mem, testSecret)

	app := fiber.New()
	app.Get("/me", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("user"))
	})
	app.Get("/admin", AuthMiddleware(), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, mem
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareSyncsUserAndSession(t *testing.T) {
	app, mem := setupAuthApp(t)

	token := signToken(t, &Claims{
		Email:     "agent@example.com",
		FirstName: "Sara",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "sess-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := mem.GetUser("user-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "agent@example.com", *user.Email)

	session, err := mem.GetSession("sess-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.Expire.After(time.Now()))
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	token := signToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsUnsignedToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app, mem := setupAuthApp(t)

	email := "admin@example.com"
	require.NoError(t, mem.UpsertUser(&model.User{ID: "admin-1", Email: &email, IsAdmin: true}))

	adminToken := signToken(t, &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	visitorToken := signToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "visitor-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+visitorToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
