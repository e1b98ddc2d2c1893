package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"primegate_backend/internal/storage"
)

// setupTestApp wires the handlers to a fresh in-memory store. The admin
// handlers are mounted without the auth chain: these tests cover the
// route layer contract, the middleware has its own tests.
func setupTestApp(t *testing.T) (*fiber.App, *storage.MemStorage) {
	t.Helper()
	mem := storage.NewMemStorage()
	Init(mem, Options{InquiryInbox: "inbox@example.com"})

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/properties", ListProperties)
	api.Get("/properties/featured", ListFeaturedProperties)
	api.Get("/properties/type/:type", ListPropertiesByType)
	api.Get("/properties/partner/:partner", ListPropertiesByPartner)
	api.Get("/properties/:id", GetProperty)
	api.Get("/services", ListServices)
	api.Get("/services/:id", GetService)
	api.Get("/partners", ListPartners)
	api.Get("/inquiries", ListInquiries)
	api.Post("/inquiries", CreateInquiry)

	admin := api.Group("/admin")
	admin.Post("/properties", CreateProperty)
	admin.Patch("/properties/:id", UpdateProperty)
	admin.Delete("/properties/:id", DeleteProperty)

	api.Get("/projects", ListProjects)
	api.Post("/projects", CreateProject)
	api.Get("/projects/:id", GetProject)
	api.Get("/releases", ListReleases)
	api.Post("/releases", CreateRelease)
	api.Get("/phases", ListPhases)
	api.Post("/phases", CreatePhase)
	api.Patch("/phases/:id", UpdatePhase)
	api.Get("/milestones", ListMilestones)
	api.Post("/milestones", CreateMilestone)
	api.Patch("/milestones/:id", UpdateMilestone)

	return app, mem
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
