package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/intern-match/internal/recommend"
	"github.com/jonathan/intern-match/internal/types"
)

// maxCatalogForPrompt caps how many postings are offered to the model in one
// ranking call to keep the prompt bounded.
const maxCatalogForPrompt = 40

// Ranker implements recommend.Ranker on top of a Gemini client.
type Ranker struct {
	client Client
	tier   ModelTier
}

// NewRanker creates an AI-backed recommendation ranker.
func NewRanker(client Client) *Ranker {
	return &Ranker{client: client, tier: TierStandard}
}

// rankedPosting is the wire shape the model is asked to return per posting.
type rankedPosting struct {
	PostingID     string   `json:"postingId"`
	MatchScore    int      `json:"matchScore"`
	SkillsMatched []string `json:"skillsMatched"`
}

// Rank asks the model to score each posting against the candidate signature
// and maps the response onto the catalog. Postings the model skips or
// mis-identifies are dropped; scores are clamped downstream.
func (r *Ranker) Rank(ctx context.Context, signature types.Signature, catalog []types.JobPosting) ([]types.Recommendation, error) {
	if len(catalog) == 0 {
		return nil, nil
	}
	if len(catalog) > maxCatalogForPrompt {
		catalog = catalog[:maxCatalogForPrompt]
	}

	prompt, err := buildRankPrompt(signature, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build ranking prompt: %w", err)
	}

	response, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return nil, fmt.Errorf("ranking call failed: %w", err)
	}

	var ranked []rankedPosting
	if err := json.Unmarshal([]byte(response), &ranked); err != nil {
		return nil, fmt.Errorf("failed to parse ranking response: %w", err)
	}

	byID := make(map[uuid.UUID]types.JobPosting, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	now := time.Now()
	recs := make([]types.Recommendation, 0, len(ranked))
	for _, entry := range ranked {
		postingID, err := uuid.Parse(entry.PostingID)
		if err != nil {
			continue
		}
		posting, ok := byID[postingID]
		if !ok {
			continue
		}
		recs = append(recs, types.Recommendation{
			ID:             uuid.New(),
			PostingID:      posting.ID,
			Title:          posting.Title,
			Company:        posting.Company,
			MatchScore:     recommend.ClampScore(entry.MatchScore),
			SkillsMatched:  entry.SkillsMatched,
			Location:       posting.Location,
			InternshipType: posting.JobType,
			Description:    posting.Description,
			CreatedAt:      now,
		})
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("ranking response contained no usable postings")
	}
	return recs, nil
}

// buildRankPrompt renders the candidate signature and catalog into the
// ranking prompt.
func buildRankPrompt(signature types.Signature, catalog []types.JobPosting) (string, error) {
	type promptPosting struct {
		PostingID    string `json:"postingId"`
		Title        string `json:"title"`
		Company      string `json:"company"`
		Location     string `json:"location,omitempty"`
		JobType      string `json:"jobType,omitempty"`
		Requirements string `json:"requirements,omitempty"`
		Description  string `json:"description,omitempty"`
	}

	postings := make([]promptPosting, 0, len(catalog))
	for _, p := range catalog {
		pp := promptPosting{
			PostingID: p.ID.String(),
			Title:     p.Title,
			Company:   p.Company,
		}
		if p.Location != nil {
			pp.Location = *p.Location
		}
		if p.JobType != nil {
			pp.JobType = *p.JobType
		}
		if p.Requirements != nil {
			pp.Requirements = *p.Requirements
		}
		if p.Description != nil {
			pp.Description = truncate(*p.Description, 500)
		}
		postings = append(postings, pp)
	}

	catalogJSON, err := json.Marshal(postings)
	if err != nil {
		return "", err
	}
	signatureJSON, err := json.Marshal(signature)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are an internship recommendation engine. Score how well each job posting matches the candidate.\n\n")
	sb.WriteString("Candidate signature:\n")
	sb.Write(signatureJSON)
	sb.WriteString("\n\nJob postings:\n")
	sb.Write(catalogJSON)
	sb.WriteString("\n\nReturn a JSON array, one entry per posting, with this exact structure:\n")
	sb.WriteString(`[{"postingId": "<id from input>", "matchScore": <integer 0-100>, "skillsMatched": ["skill", ...]}]`)
	sb.WriteString("\nDo not invent posting ids. Return only the JSON array.")

	return sb.String(), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
