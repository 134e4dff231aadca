package service

import (
	"context"
	"errors"

	"studioapi/internal/model"
	"studioapi/internal/repository"
)

var ErrContactFieldsRequired = errors.New("name, email, and message are required")

// ContactInput carries one contact form submission as entered.
type ContactInput struct {
	Name          string
	Email         string
	Phone         string
	CountryCode   string
	Message       string
	PreferredDate string
	PreferredTime string
}

// ContactService handles contact form submissions. Write-only: submissions
// are never read back by the application.
type ContactService interface {
	// Submit validates required fields and persists one submission.
	Submit(ctx context.Context, in ContactInput) (*model.ContactSubmission, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.ContactSubmission, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, ErrContactFieldsRequired
	}
	c := &model.ContactSubmission{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         nullIfBlank(in.Phone),
		CountryCode:   nullIfBlank(in.CountryCode),
		Message:       in.Message,
		PreferredDate: nullIfBlank(in.PreferredDate),
		PreferredTime: nullIfBlank(in.PreferredTime),
	}
	return s.repo.Create(ctx, c)
}
