// Package matching filters and orders job postings against search queries.
package matching

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/intern-match/internal/types"
)

// DefaultSuggestionTimeout bounds the fuzzy-suggestion collaborator call.
const DefaultSuggestionTimeout = 5 * time.Second

// Suggester is the fuzzy "did you mean" collaborator. Implementations may use
// any similarity heuristic; the engine only defines the trigger condition and
// the single-suggestion contract.
type Suggester interface {
	Suggest(ctx context.Context, jobQuery, locationQuery string) (string, error)
}

// Engine applies the search contract over an already-fetched posting catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	suggester Suggester
	timeout   time.Duration
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSuggester sets the fuzzy-suggestion collaborator.
func WithSuggester(s Suggester) Option {
	return func(e *Engine) { e.suggester = s }
}

// WithSuggestionTimeout overrides the collaborator timeout.
func WithSuggestionTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithLogger sets the logger used for collaborator failures.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a search engine. Without a suggester the no-match
// fallback is simply skipped.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timeout: DefaultSuggestionTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search filters and orders postings, then requests one fuzzy suggestion when
// a non-empty query produced no results. Collaborator failure degrades to an
// absent suggestion, never to a failed search.
func (e *Engine) Search(ctx context.Context, postings []types.JobPosting, query types.SearchQuery, filters types.FacetFilters) types.SearchResult {
	result := Filter(postings, query, filters)

	if len(result.Results) > 0 || query.IsEmpty() || e.suggester == nil {
		return result
	}

	suggestCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	suggestion, err := e.suggester.Suggest(suggestCtx, query.JobQuery, query.LocationQuery)
	if err != nil {
		e.logger.Warn("fuzzy suggestion unavailable", zap.Error(err))
		return result
	}
	result.Suggestion = suggestion
	return result
}

// Filter is the pure filtering core: active-only base set, substring query
// match, facet extraction from the base set, facet selection, and recency
// ordering. It never mutates its input.
func Filter(postings []types.JobPosting, query types.SearchQuery, filters types.FacetFilters) types.SearchResult {
	base := make([]types.JobPosting, 0, len(postings))
	for _, p := range postings {
		if p.IsActive() {
			base = append(base, p)
		}
	}

	// Facets reflect the full active catalog, before query filtering, so the
	// client can always widen a search.
	jobTypes := distinctValues(base, func(p types.JobPosting) *string { return p.JobType })
	locations := distinctValues(base, func(p types.JobPosting) *string { return p.Location })

	results := make([]types.JobPosting, 0, len(base))
	for _, p := range base {
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesFacets(p, filters) {
			continue
		}
		results = append(results, p)
	}

	sortByRecency(results)

	return types.SearchResult{
		Results:            results,
		AvailableJobTypes:  jobTypes,
		AvailableLocations: locations,
	}
}

// matchesQuery applies the text query: the job term matches if ANY of title,
// company, description or requirements contains it; the location term is an
// independent AND against location only.
func matchesQuery(p types.JobPosting, query types.SearchQuery) bool {
	if term := strings.TrimSpace(query.JobQuery); term != "" {
		if !containsFold(p.Title, term) &&
			!containsFold(p.Company, term) &&
			!ptrContainsFold(p.Description, term) &&
			!ptrContainsFold(p.Requirements, term) {
			return false
		}
	}

	if term := strings.TrimSpace(query.LocationQuery); term != "" {
		if !ptrContainsFold(p.Location, term) {
			return false
		}
	}

	return true
}

// matchesFacets applies user-selected facet values. Each non-empty selection
// is an additional AND; a posting with a nil field never matches that facet.
func matchesFacets(p types.JobPosting, filters types.FacetFilters) bool {
	if len(filters.JobTypes) > 0 {
		if p.JobType == nil || !containsString(filters.JobTypes, *p.JobType) {
			return false
		}
	}
	if len(filters.Locations) > 0 {
		if p.Location == nil || !containsString(filters.Locations, *p.Location) {
			return false
		}
	}
	return true
}

// sortByRecency orders postings most recent first, breaking timestamp ties by
// id so that identical inputs always yield identical orderings.
func sortByRecency(postings []types.JobPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		if !postings[i].CreatedAt.Equal(postings[j].CreatedAt) {
			return postings[i].CreatedAt.After(postings[j].CreatedAt)
		}
		return postings[i].ID.String() < postings[j].ID.String()
	})
}

// distinctValues collects distinct non-nil field values in first-seen order.
func distinctValues(postings []types.JobPosting, field func(types.JobPosting) *string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, p := range postings {
		v := field(p)
		if v == nil || *v == "" {
			continue
		}
		if !seen[*v] {
			seen[*v] = true
			values = append(values, *v)
		}
	}
	return values
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func ptrContainsFold(haystack *string, needle string) bool {
	if haystack == nil {
		return false
	}
	return containsFold(*haystack, needle)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
