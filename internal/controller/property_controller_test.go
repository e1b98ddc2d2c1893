package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primegate_backend/internal/model"
)

func validProperty() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Dubai Hills Park Villa",
		"type":        "villa",
		"description": "Four-bedroom villa backing onto the park.",
		"imageUrl":    "https://cdn.example.com/hills.jpg",
		"partner":     "Emaar",
		"price":       8200000,
		"bedrooms":    4,
	}
}

func TestCreatePropertyReturns201WithDefaults(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/properties", validProperty())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Property
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Featured)
	assert.Equal(t, model.PropertyTypeVilla, created.Type)
}

func TestCreatePropertyRejectsUnknownType(t *testing.T) {
	app, mem := setupTestApp(t)

	body := validProperty()
	body["type"] = "castle"
	resp := doJSON(t, app, http.MethodPost, "/api/admin/properties", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var parsed struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeBody(t, resp, &parsed)
	assert.Equal(t, "Validation failed", parsed.Message)
	require.Len(t, parsed.Errors, 1)
	assert.Equal(t, "type", parsed.Errors[0].Field)

	// Nothing was stored.
	properties, err := mem.GetProperties()
	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestGetPropertyNotFoundReturns404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/properties/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListPropertiesByTypeReturnsSubset(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/admin/properties", validProperty())

	townhouse := validProperty()
	townhouse["type"] = "townhouse"
	doJSON(t, app, http.MethodPost, "/api/admin/properties", townhouse)

	resp := doJSON(t, app, http.MethodGet, "/api/properties/type/villa", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var villas []model.Property
	decodeBody(t, resp, &villas)
	require.Len(t, villas, 1)
	assert.Equal(t, model.PropertyTypeVilla, villas[0].Type)

	// An unmatched filter yields an empty list, not a 404.
	resp = doJSON(t, app, http.MethodGet, "/api/properties/type/apartment", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var empty []model.Property
	decodeBody(t, resp, &empty)
	assert.Empty(t, empty)
}

func TestUpdatePropertyNotFoundReturns404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/admin/properties/7", map[string]interface{}{
		"price": 100,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePropertyRemovesIt(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/properties", validProperty())
	var created model.Property
	decodeBody(t, resp, &created)

	doJSON(t, app, http.MethodPost, "/api/admin/properties", validProperty())

	resp = doJSON(t, app, http.MethodDelete, "/api/admin/properties/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/properties/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/properties", nil)
	var remaining []model.Property
	decodeBody(t, resp, &remaining)
	assert.Len(t, remaining, 1)

	// Deleting again reports not found.
	resp = doJSON(t, app, http.MethodDelete, "/api/admin/properties/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFeaturedRouteFilters(t *testing.T) {
	app, _ := setupTestApp(t)

	featured := validProperty()
	featured["featured"] = true
	doJSON(t, app, http.MethodPost, "/api/admin/properties", featured)
	doJSON(t, app, http.MethodPost, "/api/admin/properties", validProperty())

	resp := doJSON(t, app, http.MethodGet, "/api/properties/featured", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []model.Property
	decodeBody(t, resp, &got)
	require.Len(t, got, 1)
	assert.True(t, got[0].Featured)
}
