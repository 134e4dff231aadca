package repository

import (
	"context"

	"studioapi/internal/model"
)

// ContactRepository defines data access for contact form submissions.
type ContactRepository interface {
	// Create inserts a new contact submission and returns the stored row.
	Create(ctx context.Context, c *model.ContactSubmission) (*model.ContactSubmission, error)
}
