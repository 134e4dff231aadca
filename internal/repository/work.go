package repository

import (
	"context"

	"studioapi/internal/model"
)

// WorkRepository defines data access for works using SQL queries only.
// No business logic here — strictly persistence operations.
type WorkRepository interface {
	// Create inserts a new work row and returns the stored record, including
	// the id and created_at assigned by the database.
	Create(ctx context.Context, w *model.Work) (*model.Work, error)

	// FindByID returns a work by its ID.
	FindByID(ctx context.Context, id int64) (*model.Work, error)

	// List returns display summaries of all works, newest first.
	List(ctx context.Context) ([]model.WorkSummary, error)

	// ListRelated returns up to limit summaries sharing the given category,
	// excluding excludeID, newest first.
	ListRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.WorkSummary, error)
}
