package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primegate_backend/internal/model"
)

func TestCreateInquiry(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inquiries", map[string]interface{}{
		"firstName": "Omar",
		"lastName":  "Khalil",
		"email":     "omar@example.com",
		"phone":     "+971501234567",
		"message":   "Interested in the Dubai Hills villa.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Inquiry
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateInquiryMissingMessageDoesNotStore(t *testing.T) {
	app, mem := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inquiries", map[string]interface{}{
		"firstName": "Omar",
		"lastName":  "Khalil",
		"email":     "omar@example.com",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var parsed struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	decodeBody(t, resp, &parsed)
	require.Len(t, parsed.Errors, 1)
	assert.Equal(t, "message", parsed.Errors[0].Field)

	inquiries, err := mem.GetInquiries()
	require.NoError(t, err)
	assert.Empty(t, inquiries)
}

func TestCreateInquiryRejectsBadEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inquiries", map[string]interface{}{
		"firstName": "Omar",
		"lastName":  "Khalil",
		"email":     "not-an-email",
		"message":   "Hello",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
