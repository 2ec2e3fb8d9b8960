package types

import "strings"

// SearchQuery holds the free-text search terms entered by a candidate.
// Both fields may be empty; an empty query means no filtering.
type SearchQuery struct {
	JobQuery      string `json:"jobQuery"`
	LocationQuery string `json:"locationQuery"`
}

// IsEmpty reports whether the query carries no search terms at all.
func (q SearchQuery) IsEmpty() bool {
	return strings.TrimSpace(q.JobQuery) == "" && strings.TrimSpace(q.LocationQuery) == ""
}

// FacetFilters holds the user-selected facet values applied on top of the
// text query. Empty slices select nothing, meaning no facet restriction.
type FacetFilters struct {
	JobTypes  []string `json:"jobTypes,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

// SearchResult is the outcome of one search computation.
// Facets reflect the full active catalog, not the filtered subset.
type SearchResult struct {
	Results            []JobPosting `json:"results"`
	AvailableJobTypes  []string     `json:"availableJobTypes"`
	AvailableLocations []string     `json:"availableLocations"`
	Suggestion         string       `json:"suggestion,omitempty"`
}
