// Package recommend imposes the ordering contract on externally computed
// candidate-to-posting match scores.
package recommend

import (
	"sort"

	"github.com/jonathan/intern-match/internal/types"
)

// TopLimit is how many recommendations the "Top Recommendations" view shows.
const TopLimit = 6

// ClampScore normalizes a collaborator-provided match score into [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Sort orders recommendations by descending match score, breaking ties by
// recency (newest first) and then by id for determinism.
func Sort(recs []types.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].ID.String() < recs[j].ID.String()
	})
}

// Top returns the top recommendations by the Sort ordering, at most TopLimit.
// The input slice is not modified.
func Top(recs []types.Recommendation) []types.Recommendation {
	ranked := make([]types.Recommendation, len(recs))
	copy(ranked, recs)
	for i := range ranked {
		ranked[i].MatchScore = ClampScore(ranked[i].MatchScore)
	}
	Sort(ranked)
	if len(ranked) > TopLimit {
		ranked = ranked[:TopLimit]
	}
	return ranked
}
