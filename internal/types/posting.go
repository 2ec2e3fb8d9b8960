package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Posting status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// JobPosting represents a recruiter-authored job/internship listing.
// Optional fields are pointers: a nil field never matches a filter and is
// never an error.
type JobPosting struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     *string   `json:"location,omitempty"`
	JobType      *string   `json:"job_type,omitempty"`
	Requirements *string   `json:"requirements,omitempty"`
	Description  *string   `json:"description,omitempty"`
	SalaryRange  *string   `json:"salary_range,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsActive reports whether the posting is eligible for matching.
func (p *JobPosting) IsActive() bool {
	return strings.EqualFold(p.Status, StatusActive)
}

// RequirementKeywords splits the free-text requirements field into its
// comma-delimited keyword hints.
func (p *JobPosting) RequirementKeywords() []string {
	if p.Requirements == nil {
		return nil
	}
	parts := strings.Split(*p.Requirements, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
