package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primegate_backend/internal/model"
)

func TestProjectReleaseHierarchy(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/projects", map[string]interface{}{
		"name": "Website Relaunch",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var project model.Project
	decodeBody(t, resp, &project)

	resp = doJSON(t, app, http.MethodPost, "/api/releases", map[string]interface{}{
		"projectId": project.ID,
		"name":      "Release 1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var release model.Release
	decodeBody(t, resp, &release)

	// Unrelated release for another project.
	doJSON(t, app, http.MethodPost, "/api/releases", map[string]interface{}{
		"projectId": project.ID + 100,
		"name":      "Other",
	})

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/releases?projectId=%d", project.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var releases []model.Release
	decodeBody(t, resp, &releases)
	require.Len(t, releases, 1)
	assert.Equal(t, release.ID, releases[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/releases", nil)
	decodeBody(t, resp, &releases)
	assert.Len(t, releases, 2)
}

func TestPhasePatchIsIdempotentOverHTTP(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/phases", map[string]interface{}{
		"releaseId":  1,
		"name":       "Build",
		"weekOffset": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var phase model.Phase
	decodeBody(t, resp, &phase)

	patch := map[string]interface{}{"weekOffset": 5, "isDemo": true}
	path := fmt.Sprintf("/api/phases/%d", phase.ID)

	resp = doJSON(t, app, http.MethodPatch, path, patch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var once model.Phase
	decodeBody(t, resp, &once)

	resp = doJSON(t, app, http.MethodPatch, path, patch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var twice model.Phase
	decodeBody(t, resp, &twice)

	assert.Equal(t, once, twice)
	assert.Equal(t, 5, twice.WeekOffset)
	assert.True(t, twice.IsDemo)
}

func TestMilestoneValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/milestones", map[string]interface{}{
		"releaseId": 1,
		"name":      "Kickoff payment",
		"amount":    5000,
		"type":      "invoice",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/milestones", map[string]interface{}{
		"releaseId": 1,
		"name":      "Kickoff payment",
		"amount":    5000,
		"type":      "kickoff",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var milestone model.Milestone
	decodeBody(t, resp, &milestone)
	assert.False(t, milestone.Paid)

	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/milestones/%d", milestone.ID), map[string]interface{}{
		"paid": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &milestone)
	assert.True(t, milestone.Paid)
}

func TestPatchMissingPhaseReturns404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/phases/99", map[string]interface{}{
		"weekOffset": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
