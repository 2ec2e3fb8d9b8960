package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intern-match/internal/types"
)

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 42, ClampScore(42))
	assert.Equal(t, 100, ClampScore(100))
	assert.Equal(t, 100, ClampScore(150))
}

func TestSort_ScoreThenRecencyThenID(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recs := []types.Recommendation{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Title: "b", MatchScore: 80, CreatedAt: base},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Title: "a", MatchScore: 80, CreatedAt: base},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Title: "c", MatchScore: 80, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Title: "d", MatchScore: 95, CreatedAt: base},
	}

	Sort(recs)

	assert.Equal(t, "d", recs[0].Title) // highest score
	assert.Equal(t, "c", recs[1].Title) // same score, newer
	assert.Equal(t, "a", recs[2].Title) // same score and time, smaller id
	assert.Equal(t, "b", recs[3].Title)
}

func TestTop_ClampsAndTruncates(t *testing.T) {
	recs := make([]types.Recommendation, 10)
	for i := range recs {
		recs[i] = types.Recommendation{
			ID:         uuid.New(),
			Title:      fmt.Sprintf("posting-%d", i),
			MatchScore: 200 - i, // out of range on purpose
		}
	}

	top := Top(recs)

	require.Len(t, top, TopLimit)
	for _, rec := range top {
		assert.LessOrEqual(t, rec.MatchScore, 100)
		assert.GreaterOrEqual(t, rec.MatchScore, 0)
	}
	// Input is untouched
	assert.Equal(t, 200, recs[0].MatchScore)
	assert.Len(t, recs, 10)
}
