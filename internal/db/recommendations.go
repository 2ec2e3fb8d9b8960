package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/intern-match/internal/types"
)

const recommendationColumns = `id, user_id, posting_id, title, company, match_score, skills_matched, location, internship_type, description, created_at`

// ReplaceRecommendations replaces a user's stored recommendations with a
// freshly ranked set, inside one transaction.
func (db *DB) ReplaceRecommendations(ctx context.Context, userID uuid.UUID, recs []types.Recommendation) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM internship_recommendations WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear recommendations: %w", err)
	}

	for _, rec := range recs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO internship_recommendations
			 (id, user_id, posting_id, title, company, match_score, skills_matched, location, internship_type, description, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			rec.ID, userID, rec.PostingID, rec.Title, rec.Company, rec.MatchScore,
			rec.SkillsMatched, rec.Location, rec.InternshipType, rec.Description, rec.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert recommendation: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recommendations: %w", err)
	}
	return nil
}

// ListRecommendations retrieves a user's stored recommendations ordered by
// match score descending, then recency.
func (db *DB) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]types.Recommendation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+recommendationColumns+`
		 FROM internship_recommendations
		 WHERE user_id = $1
		 ORDER BY match_score DESC, created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []types.Recommendation
	for rows.Next() {
		var rec types.Recommendation
		var recUserID uuid.UUID
		if err := rows.Scan(
			&rec.ID, &recUserID, &rec.PostingID, &rec.Title, &rec.Company,
			&rec.MatchScore, &rec.SkillsMatched, &rec.Location,
			&rec.InternshipType, &rec.Description, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
