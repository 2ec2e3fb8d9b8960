// Package suggest provides a deterministic "did you mean" suggester built on
// edit distance over the catalog vocabulary.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/intern-match/internal/types"
)

// maxDistanceRatio caps how different a suggestion may be from the query,
// relative to the query length.
const maxDistanceRatio = 0.5

// Local suggests corrections from a fixed vocabulary built out of posting
// titles, companies, job types and locations. It is stateless after
// construction and safe for concurrent use.
type Local struct {
	jobTerms      []string
	locationTerms []string
}

// NewLocal builds a suggester from a posting catalog.
func NewLocal(postings []types.JobPosting) *Local {
	jobSeen := make(map[string]bool)
	locSeen := make(map[string]bool)
	l := &Local{}

	addJob := func(term string) {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" || jobSeen[key] {
			return
		}
		jobSeen[key] = true
		l.jobTerms = append(l.jobTerms, term)
	}

	for _, p := range postings {
		if !p.IsActive() {
			continue
		}
		addJob(p.Title)
		addJob(p.Company)
		for _, word := range strings.Fields(p.Title) {
			addJob(word)
		}
		if p.JobType != nil {
			addJob(*p.JobType)
		}
		if p.Location != nil {
			loc := strings.TrimSpace(*p.Location)
			key := strings.ToLower(loc)
			if loc != "" && !locSeen[key] {
				locSeen[key] = true
				l.locationTerms = append(l.locationTerms, loc)
			}
		}
	}
	return l
}

// Suggest returns the single closest vocabulary term for the query, preferring
// the job term over the location term. It returns an error when no term is
// close enough to be a plausible correction.
func (l *Local) Suggest(_ context.Context, jobQuery, locationQuery string) (string, error) {
	if s, ok := closest(jobQuery, l.jobTerms); ok {
		return s, nil
	}
	if s, ok := closest(locationQuery, l.locationTerms); ok {
		return s, nil
	}
	return "", fmt.Errorf("no suggestion for query %q / %q", jobQuery, locationQuery)
}

// closest finds the vocabulary term with the smallest edit distance to the
// query, rejecting matches beyond the distance cap. Ties keep the earliest
// term so results are deterministic.
func closest(query string, vocab []string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(vocab) == 0 {
		return "", false
	}

	maxDistance := int(float64(len(query)) * maxDistanceRatio)
	if maxDistance < 1 {
		maxDistance = 1
	}

	best := ""
	bestDistance := maxDistance + 1
	for _, term := range vocab {
		d := levenshtein(query, strings.ToLower(term))
		if d < bestDistance {
			bestDistance = d
			best = term
		}
	}

	if best == "" || bestDistance == 0 {
		// Distance zero means the query already matches a vocabulary term
		// exactly; suggesting it back would be noise.
		return "", false
	}
	return best, true
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
