package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/intern-match/internal/types"
)

func TestImprovementHints_EmptyProfile(t *testing.T) {
	hints := ImprovementHints(types.Profile{})

	assert.Len(t, hints, 5)
	assert.Equal(t, "Add more skills to improve your score", hints[0])
}

func TestImprovementHints_StrongProfile(t *testing.T) {
	hints := ImprovementHints(fullProfile())

	assert.Empty(t, hints)
}

func TestImprovementHints_DetailHints(t *testing.T) {
	profile := types.Profile{
		Experience: []types.Experience{
			{Title: "A"}, {Title: "B"}, {Title: "C"},
		},
		Education: []types.Education{{Degree: "BS"}},
	}

	hints := ImprovementHints(profile)

	assert.Contains(t, hints, "Describe achievements or responsibilities in your experience")
	assert.Contains(t, hints, "Add your field of study or GPA to education entries")
}
