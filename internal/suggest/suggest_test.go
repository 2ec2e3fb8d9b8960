package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intern-match/internal/types"
)

func strPtr(s string) *string { return &s }

func suggestCatalog() []types.JobPosting {
	return []types.JobPosting{
		{
			ID:        uuid.New(),
			Title:     "Software Engineer Intern",
			Company:   "Acme",
			Location:  strPtr("Boston"),
			JobType:   strPtr("internship"),
			Status:    types.StatusActive,
			CreatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			Title:     "Data Analyst",
			Company:   "Globex",
			Location:  strPtr("Remote"),
			Status:    types.StatusInactive,
			CreatedAt: time.Now(),
		},
	}
}

func TestSuggest_CorrectsJobTypo(t *testing.T) {
	local := NewLocal(suggestCatalog())

	suggestion, err := local.Suggest(context.Background(), "Sofware", "")

	require.NoError(t, err)
	assert.Equal(t, "Software", suggestion)
}

func TestSuggest_CorrectsLocationTypo(t *testing.T) {
	local := NewLocal(suggestCatalog())

	suggestion, err := local.Suggest(context.Background(), "", "Bostn")

	require.NoError(t, err)
	assert.Equal(t, "Boston", suggestion)
}

func TestSuggest_RejectsExactMatch(t *testing.T) {
	local := NewLocal(suggestCatalog())

	_, err := local.Suggest(context.Background(), "Engineer", "")

	assert.Error(t, err)
}

func TestSuggest_RejectsDistantQuery(t *testing.T) {
	local := NewLocal(suggestCatalog())

	_, err := local.Suggest(context.Background(), "zzzzqqqq", "")

	assert.Error(t, err)
}

func TestSuggest_IgnoresInactivePostings(t *testing.T) {
	local := NewLocal(suggestCatalog())

	// "Globex" only appears on the inactive posting
	_, err := local.Suggest(context.Background(), "Globexx", "")

	assert.Error(t, err)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("intern", "intern"))
	assert.Equal(t, 1, levenshtein("intern", "interna"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 5, levenshtein("", "hello"))
}
