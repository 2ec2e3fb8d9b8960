package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/intern-match/internal/types"
)

func TestBuildListPostingsQuery_NoFilters(t *testing.T) {
	query, args := buildListPostingsQuery(ListPostingsOptions{})

	assert.Contains(t, query, "FROM job_postings WHERE 1=1")
	assert.Contains(t, query, "ORDER BY created_at DESC, id")
	assert.NotContains(t, query, "LIMIT")
	assert.Empty(t, args)
}

func TestBuildListPostingsQuery_StatusFilter(t *testing.T) {
	query, args := buildListPostingsQuery(ListPostingsOptions{Status: types.StatusActive})

	assert.Contains(t, query, "status = $1")
	assert.Equal(t, []any{"active"}, args)
}

func TestBuildListPostingsQuery_AllFilters(t *testing.T) {
	query, args := buildListPostingsQuery(ListPostingsOptions{
		Status:  types.StatusActive,
		Company: "acme",
		Limit:   50,
		Offset:  100,
	})

	assert.Contains(t, query, "status = $1")
	assert.Contains(t, query, "company ILIKE $2")
	assert.Contains(t, query, "LIMIT $3")
	assert.Contains(t, query, "OFFSET $4")
	assert.Equal(t, []any{"active", "%acme%", 50, 100}, args)
}

func TestBuildListPostingsQuery_OffsetWithoutLimit(t *testing.T) {
	query, args := buildListPostingsQuery(ListPostingsOptions{Offset: 20})

	assert.Contains(t, query, "OFFSET $1")
	assert.Equal(t, []any{20}, args)
}
