package recommend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/intern-match/internal/types"
)

// DefaultRankTimeout bounds the AI-ranking collaborator call.
const DefaultRankTimeout = 10 * time.Second

// Ranker is the AI-backed collaborator that scores a candidate signature
// against a posting catalog. Its output is opaque to this package beyond the
// ordering contract.
type Ranker interface {
	Rank(ctx context.Context, signature types.Signature, catalog []types.JobPosting) ([]types.Recommendation, error)
}

// Orchestrator calls the ranking collaborator and normalizes its output.
// On collaborator failure it degrades to a recency-ordered view of the
// catalog rather than failing the request.
type Orchestrator struct {
	ranker  Ranker
	timeout time.Duration
	logger  *zap.Logger
}

// NewOrchestrator creates an orchestrator around a ranking collaborator.
// A nil logger defaults to a no-op logger.
func NewOrchestrator(ranker Ranker, timeout time.Duration, logger *zap.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultRankTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{ranker: ranker, timeout: timeout, logger: logger}
}

// Recommend produces the top recommendations for a candidate signature.
// Only active postings are offered to the collaborator.
func (o *Orchestrator) Recommend(ctx context.Context, signature types.Signature, catalog []types.JobPosting) []types.Recommendation {
	active := make([]types.JobPosting, 0, len(catalog))
	for _, p := range catalog {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}

	if o.ranker != nil {
		rankCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()

		recs, err := o.ranker.Rank(rankCtx, signature, active)
		if err == nil {
			return Top(recs)
		}
		o.logger.Warn("ranking collaborator unavailable, falling back to recency order", zap.Error(err))
	}

	return Top(recencyFallback(active))
}

// recencyFallback maps postings to unscored recommendations so the caller
// still sees a catalog view when ranking is unavailable.
func recencyFallback(postings []types.JobPosting) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(postings))
	for _, p := range postings {
		recs = append(recs, types.Recommendation{
			ID:             p.ID,
			PostingID:      p.ID,
			Title:          p.Title,
			Company:        p.Company,
			Location:       p.Location,
			InternshipType: p.JobType,
			Description:    p.Description,
			CreatedAt:      p.CreatedAt,
		})
	}
	return recs
}
