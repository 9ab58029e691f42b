package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/taskd/pkg/extract"
	"github.com/fyrsmithlabs/taskd/pkg/identity"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	roster := []identity.User{
		{ID: "1", Name: "Daniel Smith", Email: "daniel@example.com"},
		{ID: "2", Name: "Robert Jones", Email: "robert@example.com"},
	}

	s, err := NewServer(
		extract.NewEngine(extract.Config{}, nil),
		identity.NewResolver(identity.Config{}, nil),
		roster,
		zap.NewNop(),
		nil,
	)
	require.NoError(t, err)
	return s
}

func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestNewServerRequiresDependencies(t *testing.T) {
	logger := zap.NewNop()
	engine := extract.NewEngine(extract.Config{}, nil)
	resolver := identity.NewResolver(identity.Config{}, nil)

	_, err := NewServer(nil, resolver, nil, logger, nil)
	require.Error(t, err)

	_, err = NewServer(engine, nil, nil, logger, nil)
	require.Error(t, err)

	_, err = NewServer(engine, resolver, nil, nil, nil)
	require.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleExtract(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"text": "- Sarah needs to prepare the quarterly report by May 1st, high priority\n- Buy milk",
		"reference_time": "2026-04-15T10:30:00Z"
	}`
	rec := doJSON(s, http.MethodPost, "/api/v1/extract", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Tasks, 2)

	report := resp.Tasks[0]
	assert.Equal(t, "Sarah", report.Assignee)
	assert.Equal(t, extract.PriorityHigh, report.Priority)
	require.NotNil(t, report.DueDate)
	assert.Equal(t, "2026-05-01", report.DueDate.Format("2006-01-02"))
	assert.True(t, strings.HasPrefix(report.ID, "task_"))
}

func TestHandleExtractProjectOverride(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/extract", `{"text": "- Buy milk", "project_name": "Operations"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "Operations", resp.Tasks[0].Project)
}

func TestHandleExtractValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{}`},
		{"malformed json", `{"text":`},
		{"bad reference time", `{"text": "Buy milk", "reference_time": "yesterday"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(s, http.MethodPost, "/api/v1/extract", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleResolve(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/resolve", `{"name": "Dan"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Daniel Smith", resp.Matches[0].Name)
}

func TestHandleResolveInlineRoster(t *testing.T) {
	s := newTestServer(t)

	body := `{"name": "Bob", "roster": [{"id": "9", "name": "Robert Stone"}]}`
	rec := doJSON(s, http.MethodPost, "/api/v1/resolve", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "9", resp.Matches[0].ID)
}

func TestHandleResolveUnmatched(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/resolve", `{"name": "Danyel"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Matches)
	require.NotEmpty(t, resp.Candidates)
	assert.Equal(t, "Daniel Smith", resp.Candidates[0].User.Name)
}

func TestHandleResolveMissingName(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/resolve", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	doJSON(s, http.MethodPost, "/api/v1/extract", `{"text": "- Buy milk"}`)
	doJSON(s, http.MethodPost, "/api/v1/resolve", `{"name": "Dan"}`)

	rec := doJSON(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), "taskd_extraction_requests_total 1")
	assert.Contains(t, rec.Body.String(), `taskd_resolver_requests_total{outcome="matched"} 1`)
}
