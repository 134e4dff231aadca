package postgres

import (
	"context"
	"database/sql"

	"studioapi/internal/model"
	"studioapi/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a new contact submission and returns the stored row.
func (r *ContactPostgres) Create(ctx context.Context, c *model.ContactSubmission) (*model.ContactSubmission, error) {
	const q = `
		INSERT INTO contacts (name, email, phone, country_code, message, preferred_date, preferred_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, phone, country_code, message, preferred_date, preferred_time, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		c.Name,
		c.Email,
		c.Phone,
		c.CountryCode,
		c.Message,
		c.PreferredDate,
		c.PreferredTime,
	)
	var out model.ContactSubmission
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Phone,
		&out.CountryCode,
		&out.Message,
		&out.PreferredDate,
		&out.PreferredTime,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
