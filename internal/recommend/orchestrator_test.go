package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intern-match/internal/types"
)

type stubRanker struct {
	recs []types.Recommendation
	err  error
	seen []types.JobPosting
}

func (r *stubRanker) Rank(_ context.Context, _ types.Signature, catalog []types.JobPosting) ([]types.Recommendation, error) {
	r.seen = catalog
	return r.recs, r.err
}

func activePosting(title string, createdAt time.Time) types.JobPosting {
	return types.JobPosting{
		ID:        uuid.New(),
		Title:     title,
		Company:   "Acme",
		Status:    types.StatusActive,
		CreatedAt: createdAt,
	}
}

func TestRecommend_UsesRankerOutput(t *testing.T) {
	ranker := &stubRanker{recs: []types.Recommendation{
		{ID: uuid.New(), Title: "ranked", MatchScore: 90},
	}}
	o := NewOrchestrator(ranker, 0, nil)

	recs := o.Recommend(context.Background(), types.Signature{}, []types.JobPosting{
		activePosting("a", time.Now()),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "ranked", recs[0].Title)
}

func TestRecommend_OnlyActivePostingsReachRanker(t *testing.T) {
	ranker := &stubRanker{}
	o := NewOrchestrator(ranker, 0, nil)

	inactive := activePosting("gone", time.Now())
	inactive.Status = types.StatusInactive

	o.Recommend(context.Background(), types.Signature{}, []types.JobPosting{
		activePosting("kept", time.Now()),
		inactive,
	})

	require.Len(t, ranker.seen, 1)
	assert.Equal(t, "kept", ranker.seen[0].Title)
}

func TestRecommend_FallsBackToRecencyOnRankerFailure(t *testing.T) {
	ranker := &stubRanker{err: fmt.Errorf("model unavailable")}
	o := NewOrchestrator(ranker, 0, nil)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recs := o.Recommend(context.Background(), types.Signature{}, []types.JobPosting{
		activePosting("older", base),
		activePosting("newer", base.Add(time.Hour)),
	})

	require.Len(t, recs, 2)
	assert.Equal(t, "newer", recs[0].Title)
	assert.Equal(t, "older", recs[1].Title)
	assert.Zero(t, recs[0].MatchScore)
}

func TestRecommend_NilRankerFallsBack(t *testing.T) {
	o := NewOrchestrator(nil, 0, nil)

	recs := o.Recommend(context.Background(), types.Signature{}, []types.JobPosting{
		activePosting("only", time.Now()),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "only", recs[0].Title)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	o := NewOrchestrator(&stubRanker{}, 0, nil)

	recs := o.Recommend(context.Background(), types.Signature{}, nil)

	assert.Nil(t, recs)
}

func TestRecommend_TruncatesToTopLimit(t *testing.T) {
	o := NewOrchestrator(nil, 0, nil)

	catalog := make([]types.JobPosting, 10)
	for i := range catalog {
		catalog[i] = activePosting(fmt.Sprintf("p%d", i), time.Now())
	}

	recs := o.Recommend(context.Background(), types.Signature{}, catalog)

	assert.Len(t, recs, TopLimit)
}
