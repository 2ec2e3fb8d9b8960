package scoring

import "github.com/jonathan/intern-match/internal/types"

// Thresholds below which a category earns an improvement hint.
const (
	minSkillsForFullPoints   = 10
	minProjectsForFullPoints = 3
	minCertsForFullPoints    = 3
	minExperienceForFullBase = 3
)

// ImprovementHints returns rule-based suggestions for thin profile sections,
// ordered by category weight. An empty slice means nothing to improve.
func ImprovementHints(p types.Profile) []string {
	var hints []string

	if len(p.Skills) < minSkillsForFullPoints {
		hints = append(hints, "Add more skills to improve your score")
	}

	if len(p.Experience) < minExperienceForFullBase {
		hints = append(hints, "Add more work experience entries")
	} else if !anyExperienceDetail(p) {
		hints = append(hints, "Describe achievements or responsibilities in your experience")
	}

	if len(p.Education) == 0 {
		hints = append(hints, "Include complete education details")
	} else if !anyEducationDetail(p) {
		hints = append(hints, "Add your field of study or GPA to education entries")
	}

	if len(p.Projects) < minProjectsForFullPoints {
		hints = append(hints, "Showcase more projects")
	}

	if len(p.Certifications) < minCertsForFullPoints {
		hints = append(hints, "List relevant certifications")
	}

	return hints
}

func anyExperienceDetail(p types.Profile) bool {
	for _, exp := range p.Experience {
		if exp.HasDetail() {
			return true
		}
	}
	return false
}

func anyEducationDetail(p types.Profile) bool {
	for _, edu := range p.Education {
		if edu.HasDetail() {
			return true
		}
	}
	return false
}
