package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primegate_backend/internal/controller"
	"primegate_backend/internal/middleware"
	"primegate_backend/internal/storage"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	mem := storage.NewMemStorage()
	controller.Init(mem, controller.Options{})
	middleware.Init(mem, "test-secret")
	return newApp()
}

func TestListInquiriesRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/inquiries", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownPathReturns404(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDisallowedMethodKeepsClientStatus(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/partners", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
