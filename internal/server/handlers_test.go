package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/intern-match/internal/recommend"
	"github.com/jonathan/intern-match/internal/scoring"
	"github.com/jonathan/intern-match/internal/types"
)

// testServer builds a Server wired for handler tests that never touch the
// database or a live model.
func testServer(ranker recommend.Ranker) *Server {
	return &Server{
		logger:            zap.NewNop(),
		orchestrator:      recommend.NewOrchestrator(ranker, time.Second, nil),
		suggestionTimeout: time.Second,
	}
}

func TestHandleScore(t *testing.T) {
	s := testServer(nil)

	body := `{"skills": ["Go", "SQL"], "projects": [{"name": "Compiler"}]}`
	req := httptest.NewRequest("POST", "/score", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleScore(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, 100, result.MaxScore)
	assert.Len(t, result.Breakdown, 5)
}

func TestHandleScore_MalformedSectionStillScores(t *testing.T) {
	s := testServer(nil)

	body := `{"skills": ["Go"], "experience": "not an array"}`
	req := httptest.NewRequest("POST", "/score", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleScore(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Score) // 2.5 from one skill, rounded
}

func TestHandleSearch_InlineCatalog(t *testing.T) {
	s := testServer(nil)

	location := "Boston"
	jobType := "internship"
	catalog := []types.JobPosting{
		{
			ID:        uuid.New(),
			Title:     "SWE Intern",
			Company:   "Acme",
			Location:  &location,
			JobType:   &jobType,
			Status:    types.StatusActive,
			CreatedAt: time.Now(),
		},
	}

	payload, err := json.Marshal(map[string]any{
		"jobQuery": "intern",
		"postings": catalog,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/search", strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()

	s.handleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Results, 1)
	assert.Equal(t, []string{"internship"}, result.AvailableJobTypes)
	assert.Equal(t, []string{"Boston"}, result.AvailableLocations)
}

func TestHandleSearch_SuggestionForTypo(t *testing.T) {
	s := testServer(nil)

	catalog := []types.JobPosting{
		{ID: uuid.New(), Title: "Software Engineer", Company: "Acme", Status: types.StatusActive, CreatedAt: time.Now()},
	}
	payload, err := json.Marshal(map[string]any{
		"jobQuery": "Sofware",
		"postings": catalog,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/search", strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()

	s.handleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Results)
	assert.Equal(t, "Software", result.Suggestion)
}

func TestHandleSearch_InvalidJSON(t *testing.T) {
	s := testServer(nil)

	req := httptest.NewRequest("POST", "/search", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	s.handleSearch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecommend_RecencyFallbackWithoutRanker(t *testing.T) {
	s := testServer(nil)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	catalog := []types.JobPosting{
		{ID: uuid.New(), Title: "Older", Company: "Acme", Status: types.StatusActive, CreatedAt: base},
		{ID: uuid.New(), Title: "Newer", Company: "Acme", Status: types.StatusActive, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), Title: "Closed", Company: "Acme", Status: types.StatusInactive, CreatedAt: base.Add(2 * time.Hour)},
	}
	payload, err := json.Marshal(map[string]any{
		"profile":  map[string]any{"skills": []string{"Go"}},
		"postings": catalog,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/recommendations", strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()

	s.handleRecommend(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Recommendations []types.Recommendation `json:"recommendations"`
		Count           int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, 2, response.Count)
	assert.Equal(t, "Newer", response.Recommendations[0].Title)
	assert.Equal(t, "Older", response.Recommendations[1].Title)
}

func TestHandleRecommend_MissingProfile(t *testing.T) {
	s := testServer(nil)

	req := httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{"postings": []}`))
	rec := httptest.NewRecorder()

	s.handleRecommend(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPathUUID(t *testing.T) {
	req := httptest.NewRequest("GET", "/postings/abc", nil)
	req.SetPathValue("id", "not-a-uuid")

	_, err := pathUUID(req, "id")
	assert.Error(t, err)

	id := uuid.New()
	req.SetPathValue("id", id.String())
	parsed, err := pathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/postings?limit=25&offset=junk", nil)

	assert.Equal(t, 25, parseQueryInt(req, "limit", 100))
	assert.Equal(t, 0, parseQueryInt(req, "offset", 0))
	assert.Equal(t, 100, parseQueryInt(req, "missing", 100))
}

func TestHandleHealth(t *testing.T) {
	s := testServer(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	s := testServer(nil)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("OPTIONS", "/score", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
