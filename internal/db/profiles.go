package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/intern-match/internal/types"
)

// StoredProfile is a candidate profile snapshot as persisted for a user.
type StoredProfile struct {
	UserID    uuid.UUID     `json:"user_id"`
	Profile   types.Profile `json:"profile"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SaveProfile upserts the profile snapshot for a user.
func (db *DB) SaveProfile(ctx context.Context, userID uuid.UUID, profile types.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidate_profiles (user_id, profile, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		userID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile snapshot, returning nil when absent.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*StoredProfile, error) {
	var stored StoredProfile
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT user_id, profile, updated_at FROM candidate_profiles WHERE user_id = $1`,
		userID,
	).Scan(&stored.UserID, &payload, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	// Stored snapshots go through the same tolerant decoding as inline
	// payloads, so a historical malformed section cannot break scoring.
	stored.Profile = types.DecodeProfile(payload)
	return &stored, nil
}
