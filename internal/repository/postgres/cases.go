package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/service/intake"
)

// CaseRepo implements intake.Repository against PostgreSQL.
type CaseRepo struct{ db *sql.DB }

// NewCaseRepo creates a Postgres-backed case repository.
func NewCaseRepo(db *sql.DB) *CaseRepo { return &CaseRepo{db: db} }

func (r *CaseRepo) Create(ctx context.Context, c *domain.Case) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO intake_cases
			(id, reference, submitter_name, submitter_email, category, summary,
			 status, email_warnings, email_suggestions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, c.ID, c.Reference, c.SubmitterName, c.SubmitterEmail, c.Category, c.Summary,
		c.Status, pq.Array(c.EmailWarnings), pq.Array(c.EmailSuggestions),
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *CaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	var c domain.Case
	err := r.db.QueryRowContext(ctx, `
		SELECT id, reference, submitter_name, submitter_email, category, summary,
		       status, email_warnings, email_suggestions, created_at, updated_at
		FROM intake_cases WHERE id = $1
	`, id).Scan(&c.ID, &c.Reference, &c.SubmitterName, &c.SubmitterEmail,
		&c.Category, &c.Summary, &c.Status,
		pq.Array(&c.EmailWarnings), pq.Array(&c.EmailSuggestions),
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, intake.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}
	return &c, nil
}

func (r *CaseRepo) List(ctx context.Context, f intake.ListFilter) ([]domain.Case, int, error) {
	where := ""
	args := []interface{}{}
	if f.Status != "" {
		args = append(args, f.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		clause := fmt.Sprintf("(submitter_name ILIKE $%d OR summary ILIKE $%d)", len(args), len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM intake_cases`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cases: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = total
	}
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, reference, submitter_name, submitter_email, category, summary,
		       status, email_warnings, email_suggestions, created_at, updated_at
		FROM intake_cases%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var out []domain.Case
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.Reference, &c.SubmitterName, &c.SubmitterEmail,
			&c.Category, &c.Summary, &c.Status,
			pq.Array(&c.EmailWarnings), pq.Array(&c.EmailSuggestions),
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *CaseRepo) UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE intake_cases SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update case status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return intake.ErrNotFound
	}
	return nil
}
