package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/intern-match/internal/matching"
	"github.com/jonathan/intern-match/internal/suggest"
	"github.com/jonathan/intern-match/internal/types"
)

// searchRequest is the search endpoint payload. When Postings is provided the
// search runs over the inline catalog; otherwise the stored catalog is used.
type searchRequest struct {
	JobQuery      string             `json:"jobQuery"`
	LocationQuery string             `json:"locationQuery"`
	JobTypes      []string           `json:"jobTypes,omitempty"`
	Locations     []string           `json:"locations,omitempty"`
	Postings      []types.JobPosting `json:"postings,omitempty"`
}

// handleSearch runs the search contract over a posting catalog.
// POST /search
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req searchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	postings := req.Postings
	if postings == nil {
		postings, err = s.db.ListActivePostings(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load postings")
			return
		}
	}

	result := s.searchEngine(postings).Search(r.Context(), postings,
		types.SearchQuery{JobQuery: req.JobQuery, LocationQuery: req.LocationQuery},
		types.FacetFilters{JobTypes: req.JobTypes, Locations: req.Locations},
	)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleCatalogSearch is the query-parameter variant over the stored catalog.
// GET /postings/search?q=...&location=...&job_type=...&location_facet=...
func (s *Server) handleCatalogSearch(w http.ResponseWriter, r *http.Request) {
	postings, err := s.db.ListActivePostings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load postings")
		return
	}

	params := r.URL.Query()
	result := s.searchEngine(postings).Search(r.Context(), postings,
		types.SearchQuery{
			JobQuery:      params.Get("q"),
			LocationQuery: params.Get("location"),
		},
		types.FacetFilters{
			JobTypes:  params["job_type"],
			Locations: params["location_facet"],
		},
	)
	s.jsonResponse(w, http.StatusOK, result)
}

// searchEngine builds an engine whose suggestion vocabulary comes from the
// catalog being searched.
func (s *Server) searchEngine(postings []types.JobPosting) *matching.Engine {
	return matching.NewEngine(
		matching.WithSuggester(suggest.NewLocal(postings)),
		matching.WithSuggestionTimeout(s.suggestionTimeout),
		matching.WithLogger(s.logger),
	)
}
