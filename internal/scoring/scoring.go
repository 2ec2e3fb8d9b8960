// Package scoring computes deterministic profile-completeness scores.
package scoring

import (
	"math"

	"github.com/jonathan/intern-match/internal/types"
)

// Category status constants derived from points vs maxPoints.
const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusMissing  = "missing"
)

// MaxScore is the fixed total point budget across all categories.
const MaxScore = 100

// CategoryScore is one row of the score breakdown.
type CategoryScore struct {
	Label     string  `json:"label"`
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"maxPoints"`
	Status    string  `json:"status"`
}

// Result is the outcome of scoring one profile snapshot.
type Result struct {
	Score     int             `json:"score"`
	MaxScore  int             `json:"maxScore"`
	Label     string          `json:"label"`
	Breakdown []CategoryScore `json:"breakdown"`
	Hints     []string        `json:"hints,omitempty"`
}

// Weights is the configurable weighting table for the five categories.
// The per-category maxima must sum to MaxScore for the breakdown invariant
// to hold.
type Weights struct {
	SkillsMax float64
	PerSkill  float64

	ExperienceBaseMax     float64
	PerExperience         float64
	ExperienceDetailBonus float64

	EducationBaseMax     float64
	PerEducation         float64
	EducationDetailBonus float64

	ProjectsMax float64
	PerProject  float64

	CertificationsMax float64
	PerCertification  float64
}

// DefaultWeights returns the canonical weighting table:
// Skills 25, Experience 25 (15 base + 10 detail), Education 20 (15 base + 5
// detail), Projects 15, Certifications 15.
func DefaultWeights() Weights {
	return Weights{
		SkillsMax: 25,
		PerSkill:  2.5,

		ExperienceBaseMax:     15,
		PerExperience:         5,
		ExperienceDetailBonus: 10,

		EducationBaseMax:     15,
		PerEducation:         10,
		EducationDetailBonus: 5,

		ProjectsMax: 15,
		PerProject:  5,

		CertificationsMax: 15,
		PerCertification:  5,
	}
}

// ComputeScore scores a profile snapshot with the default weights.
func ComputeScore(profile types.Profile) Result {
	return ComputeScoreWithWeights(profile, DefaultWeights())
}

// ComputeScoreWithWeights scores a profile snapshot against a weighting table.
// It is a pure function: no mutation, no error conditions. Absent sections
// simply contribute zero points. Rounding happens only on the final sum.
func ComputeScoreWithWeights(profile types.Profile, w Weights) Result {
	breakdown := []CategoryScore{
		category("Skills", skillsPoints(profile, w), w.SkillsMax),
		category("Experience", experiencePoints(profile, w), w.ExperienceBaseMax+w.ExperienceDetailBonus),
		category("Education", educationPoints(profile, w), w.EducationBaseMax+w.EducationDetailBonus),
		category("Projects", projectsPoints(profile, w), w.ProjectsMax),
		category("Certifications", certificationsPoints(profile, w), w.CertificationsMax),
	}

	total := 0.0
	for _, c := range breakdown {
		total += c.Points
	}
	score := int(math.Round(total))

	return Result{
		Score:     score,
		MaxScore:  MaxScore,
		Label:     ScoreLabel(score),
		Breakdown: breakdown,
		Hints:     ImprovementHints(profile),
	}
}

// ScoreLabel maps an overall score to its presentation label. The thresholds
// are part of the UI parity contract and must stay stable.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// category builds a breakdown row, deriving status solely from points vs max.
func category(label string, points, maxPoints float64) CategoryScore {
	status := StatusPartial
	switch {
	case points >= maxPoints:
		status = StatusComplete
	case points == 0:
		status = StatusMissing
	}
	return CategoryScore{
		Label:     label,
		Points:    points,
		MaxPoints: maxPoints,
		Status:    status,
	}
}

func skillsPoints(p types.Profile, w Weights) float64 {
	return math.Min(w.SkillsMax, float64(len(p.Skills))*w.PerSkill)
}

func experiencePoints(p types.Profile, w Weights) float64 {
	points := math.Min(w.ExperienceBaseMax, float64(len(p.Experience))*w.PerExperience)
	for _, exp := range p.Experience {
		if exp.HasDetail() {
			points += w.ExperienceDetailBonus
			break
		}
	}
	return points
}

func educationPoints(p types.Profile, w Weights) float64 {
	points := math.Min(w.EducationBaseMax, float64(len(p.Education))*w.PerEducation)
	for _, edu := range p.Education {
		if edu.HasDetail() {
			points += w.EducationDetailBonus
			break
		}
	}
	return points
}

func projectsPoints(p types.Profile, w Weights) float64 {
	return math.Min(w.ProjectsMax, float64(len(p.Projects))*w.PerProject)
}

func certificationsPoints(p types.Profile, w Weights) float64 {
	return math.Min(w.CertificationsMax, float64(len(p.Certifications))*w.PerCertification)
}
