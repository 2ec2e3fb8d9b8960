package types

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation links a candidate to a posting with an externally computed
// match score. The score is an opaque integer in [0,100]; this system only
// imposes the ordering contract on it.
type Recommendation struct {
	ID             uuid.UUID `json:"id"`
	PostingID      uuid.UUID `json:"posting_id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	MatchScore     int       `json:"match_score"`
	SkillsMatched  []string  `json:"skills_matched,omitempty"`
	Location       *string   `json:"location,omitempty"`
	InternshipType *string   `json:"internship_type,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
