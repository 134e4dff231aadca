package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"studioapi/internal/model"
	"studioapi/internal/repository"
)

// WorkPostgres is a PostgreSQL implementation of repository.WorkRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type WorkPostgres struct {
	db *sql.DB
}

// NewWorkPostgres creates a new WorkPostgres repository.
func NewWorkPostgres(db *sql.DB) *WorkPostgres {
	return &WorkPostgres{db: db}
}

var _ repository.WorkRepository = (*WorkPostgres)(nil)

const workColumns = `id, title, category, description, image_url, client_name, client_logo_url, image_list, pdf_url, team, created_at`

// Create inserts a new work row and returns the stored record.
// image_list and team are persisted as JSONB.
func (r *WorkPostgres) Create(ctx context.Context, w *model.Work) (*model.Work, error) {
	const q = `
		INSERT INTO works (title, category, description, image_url, client_name, client_logo_url, image_list, pdf_url, team)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + workColumns

	imageList, err := json.Marshal(w.ImageList)
	if err != nil {
		return nil, fmt.Errorf("marshal image_list: %w", err)
	}
	team, err := json.Marshal(w.Team)
	if err != nil {
		return nil, fmt.Errorf("marshal team: %w", err)
	}

	row := r.db.QueryRowContext(ctx, q,
		w.Title,
		w.Category,
		w.Description,
		w.ImageURL,
		w.ClientName,
		w.ClientLogoURL,
		imageList,
		w.PDFURL,
		team,
	)
	return scanWork(row)
}

// FindByID fetches a single work by its ID.
func (r *WorkPostgres) FindByID(ctx context.Context, id int64) (*model.Work, error) {
	const q = `
		SELECT ` + workColumns + `
		FROM works
		WHERE id = $1
	`
	return scanWork(r.db.QueryRowContext(ctx, q, id))
}

// List returns display summaries of all works, newest first.
func (r *WorkPostgres) List(ctx context.Context) ([]model.WorkSummary, error) {
	const q = `
		SELECT id, title, category, image_url, created_at
		FROM works
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// ListRelated returns up to limit summaries in the same category, excluding
// the given work, newest first.
func (r *WorkPostgres) ListRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.WorkSummary, error) {
	const q = `
		SELECT id, title, category, image_url, created_at
		FROM works
		WHERE category = $1 AND id <> $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, q, category, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWork(row rowScanner) (*model.Work, error) {
	var (
		w         model.Work
		imageList []byte
		team      []byte
	)
	if err := row.Scan(
		&w.ID,
		&w.Title,
		&w.Category,
		&w.Description,
		&w.ImageURL,
		&w.ClientName,
		&w.ClientLogoURL,
		&imageList,
		&w.PDFURL,
		&team,
		&w.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(imageList, &w.ImageList); err != nil {
		return nil, fmt.Errorf("unmarshal image_list: %w", err)
	}
	if err := json.Unmarshal(team, &w.Team); err != nil {
		return nil, fmt.Errorf("unmarshal team: %w", err)
	}
	return &w, nil
}

func scanSummaries(rows *sql.Rows) ([]model.WorkSummary, error) {
	items := make([]model.WorkSummary, 0)
	for rows.Next() {
		var s model.WorkSummary
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Category,
			&s.ImageURL,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
