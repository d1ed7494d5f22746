package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/types"
)

// CreateResume stores records under a new resume id, preserving their order.
func (db *DB) CreateResume(ctx context.Context, label string, records []types.Record) (uuid.UUID, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO resumes (id, label, name) VALUES ($1, $2, $3)`,
		id, label, nullIfEmpty(resumeName(records)),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}

	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = []any{id, i, string(r.Section), r.Subsection, r.Content}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"resume_records"},
		[]string{"resume_id", "position", "section", "subsection", "content"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil, nil when it does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT r.id, r.label, r.name, r.created_at,
		        (SELECT COUNT(*) FROM resume_records rr WHERE rr.resume_id = r.id)
		 FROM resumes r WHERE r.id = $1`,
		id,
	).Scan(&r.ID, &r.Label, &r.Name, &r.CreatedAt, &r.RecordCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes returns the most recent resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT r.id, r.label, r.name, r.created_at,
		        (SELECT COUNT(*) FROM resume_records rr WHERE rr.resume_id = r.id)
		 FROM resumes r
		 ORDER BY r.created_at DESC
		 LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.Label, &r.Name, &r.CreatedAt, &r.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// GetRecords returns the records of a resume in their original order.
func (db *DB) GetRecords(ctx context.Context, id uuid.UUID) ([]types.Record, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT section, subsection, content FROM resume_records
		 WHERE resume_id = $1 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var (
			r       types.Record
			section string
		)
		if err := rows.Scan(&section, &r.Subsection, &r.Content); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Section = types.Section(section)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}
	return records, nil
}

// DeleteResume deletes a resume with its records and renders (via cascade).
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrResumeNotFound, id)
	}
	return nil
}

// SaveRender stores a rendered PDF for a resume.
func (db *DB) SaveRender(ctx context.Context, resumeID uuid.UUID, pdf []byte, stats layout.Stats) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO renders (id, resume_id, pdf, pages, lines, sections, blocks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, resumeID, pdf, stats.Pages, stats.Lines, stats.Sections, stats.Blocks,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save render: %w", err)
	}
	return id, nil
}

// GetLatestRender returns the newest render of a resume. Returns nil, nil when there is none.
func (db *DB) GetLatestRender(ctx context.Context, resumeID uuid.UUID) (*Render, error) {
	var r Render
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, pdf, pages, lines, sections, blocks, created_at
		 FROM renders WHERE resume_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		resumeID,
	).Scan(&r.ID, &r.ResumeID, &r.PDF, &r.Pages, &r.Lines, &r.Sections, &r.Blocks, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get render: %w", err)
	}
	return &r, nil
}

// resumeName returns the first personal_info/name content.
func resumeName(records []types.Record) string {
	for _, r := range records {
		if r.IsPersonalInfo() && r.Subsection == types.SubsectionName {
			return r.Content
		}
	}
	return ""
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
