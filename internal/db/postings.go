package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/intern-match/internal/types"
)

const postingColumns = `id, title, company, location, job_type, requirements, description, salary_range, status, created_at, updated_at`

// PostingCreateInput is used when creating a new job posting
type PostingCreateInput struct {
	Title        string
	Company      string
	Location     *string
	JobType      *string
	Requirements *string
	Description  *string
	SalaryRange  *string
	Status       string
}

// PostingUpdateInput is used when updating an existing job posting.
// Nil fields are left unchanged.
type PostingUpdateInput struct {
	Title        *string
	Company      *string
	Location     *string
	JobType      *string
	Requirements *string
	Description  *string
	SalaryRange  *string
	Status       *string
}

// ListPostingsOptions holds filters and pagination for listing postings
type ListPostingsOptions struct {
	Status  string
	Company string
	Limit   int
	Offset  int
}

// CreatePosting inserts a new job posting and returns it
func (db *DB) CreatePosting(ctx context.Context, input PostingCreateInput) (*types.JobPosting, error) {
	status := input.Status
	if status == "" {
		status = types.StatusActive
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (title, company, location, job_type, requirements, description, salary_range, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+postingColumns,
		input.Title, input.Company, input.Location, input.JobType,
		input.Requirements, input.Description, input.SalaryRange, status,
	)

	posting, err := scanPosting(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create posting: %w", err)
	}
	return posting, nil
}

// GetPostingByID retrieves a posting by its ID, returning nil when absent
func (db *DB) GetPostingByID(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, id)

	posting, err := scanPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return posting, nil
}

// ListPostings retrieves postings with optional filters, newest first
func (db *DB) ListPostings(ctx context.Context, opts ListPostingsOptions) ([]types.JobPosting, error) {
	query, args := buildListPostingsQuery(opts)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	return collectPostings(rows)
}

// ListActivePostings retrieves the full active catalog, newest first
func (db *DB) ListActivePostings(ctx context.Context) ([]types.JobPosting, error) {
	return db.ListPostings(ctx, ListPostingsOptions{Status: types.StatusActive})
}

// UpdatePosting applies a partial update and returns the updated posting,
// or nil when the posting does not exist
func (db *DB) UpdatePosting(ctx context.Context, id uuid.UUID, input PostingUpdateInput) (*types.JobPosting, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	argNum := 2

	addSet := func(column string, value *string) {
		if value != nil {
			sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
			args = append(args, *value)
			argNum++
		}
	}
	addSet("title", input.Title)
	addSet("company", input.Company)
	addSet("location", input.Location)
	addSet("job_type", input.JobType)
	addSet("requirements", input.Requirements)
	addSet("description", input.Description)
	addSet("salary_range", input.SalaryRange)
	addSet("status", input.Status)

	query := fmt.Sprintf(
		`UPDATE job_postings SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), postingColumns,
	)

	row := db.pool.QueryRow(ctx, query, args...)
	posting, err := scanPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update posting: %w", err)
	}
	return posting, nil
}

// DeletePosting removes a posting. Returns an error when it does not exist.
func (db *DB) DeletePosting(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("posting not found: %s", id)
	}
	return nil
}

// buildListPostingsQuery assembles the SELECT for ListPostings.
// Split out so the SQL assembly is testable without a database.
func buildListPostingsQuery(opts ListPostingsOptions) (string, []any) {
	query := `SELECT ` + postingColumns + ` FROM job_postings WHERE 1=1`
	args := []any{}
	argNum := 1

	if opts.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, opts.Status)
		argNum++
	}
	if opts.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+opts.Company+"%")
		argNum++
	}

	query += " ORDER BY created_at DESC, id"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, opts.Limit)
		argNum++
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, opts.Offset)
	}

	return query, args
}

// scanPosting scans a single posting row
func scanPosting(row pgx.Row) (*types.JobPosting, error) {
	var p types.JobPosting
	err := row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Location, &p.JobType,
		&p.Requirements, &p.Description, &p.SalaryRange, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// collectPostings scans all rows of a posting query
func collectPostings(rows pgx.Rows) ([]types.JobPosting, error) {
	var postings []types.JobPosting
	for rows.Next() {
		var p types.JobPosting
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Company, &p.Location, &p.JobType,
			&p.Requirements, &p.Description, &p.SalaryRange, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}
