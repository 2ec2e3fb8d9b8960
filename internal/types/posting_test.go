package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobPostingIsActive(t *testing.T) {
	assert.True(t, (&JobPosting{Status: "active"}).IsActive())
	assert.True(t, (&JobPosting{Status: "Active"}).IsActive())
	assert.False(t, (&JobPosting{Status: "inactive"}).IsActive())
	assert.False(t, (&JobPosting{}).IsActive())
}

func TestRequirementKeywords(t *testing.T) {
	reqs := "Go, SQL,  , Docker"
	p := &JobPosting{Requirements: &reqs}

	assert.Equal(t, []string{"Go", "SQL", "Docker"}, p.RequirementKeywords())
}

func TestRequirementKeywords_Nil(t *testing.T) {
	assert.Nil(t, (&JobPosting{}).RequirementKeywords())
}
