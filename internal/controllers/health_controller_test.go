package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwa/internal/testutil"
)

func TestHealth_BeforeFirstRun(t *testing.T) {
	hc := NewHealthController(&testutil.MockAnalysisService{})

	rec := httptest.NewRecorder()
	hc.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["ready"])
	assert.NotContains(t, resp, "generated_at")
}

func TestHealth_WithResults(t *testing.T) {
	hc := NewHealthController(&testutil.MockAnalysisService{Results: fixtureResults()})

	rec := httptest.NewRecorder()
	hc.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ready"])
	assert.Equal(t, "2024-06-01T12:00:00Z", resp["generated_at"])
	assert.Equal(t, float64(10), resp["messages"])
	assert.Equal(t, float64(2), resp["contacts"])
}

func TestHealth_RejectsNonGet(t *testing.T) {
	hc := NewHealthController(&testutil.MockAnalysisService{})

	rec := httptest.NewRecorder()
	hc.Health(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
