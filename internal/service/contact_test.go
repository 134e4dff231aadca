package service

import (
	"context"
	"errors"
	"testing"

	"studioapi/internal/model"
	repoMocks "studioapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path with blank optionals stored as null", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		svc := NewContactService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.ContactSubmission) bool {
			return c.Name == "Ada" &&
				c.Email == "ada@example.com" &&
				c.Message == "hello" &&
				c.Phone == nil &&
				c.PreferredDate == nil
		})).Return(&model.ContactSubmission{ID: 1}, nil)

		got, err := svc.Submit(ctx, ContactInput{
			Name:    "Ada",
			Email:   "ada@example.com",
			Message: "hello",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("optional fields are kept when provided", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		svc := NewContactService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.ContactSubmission) bool {
			return c.Phone != nil && *c.Phone == "5551234" &&
				c.CountryCode != nil && *c.CountryCode == "+44" &&
				c.PreferredDate != nil && *c.PreferredDate == "2026-09-15" &&
				c.PreferredTime != nil && *c.PreferredTime == "14:00"
		})).Return(&model.ContactSubmission{ID: 2}, nil)

		_, err := svc.Submit(ctx, ContactInput{
			Name:          "Ada",
			Email:         "ada@example.com",
			Phone:         "5551234",
			CountryCode:   "+44",
			Message:       "hello",
			PreferredDate: "2026-09-15",
			PreferredTime: "14:00",
		})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing required fields never reach the repository", func(t *testing.T) {
		for _, in := range []ContactInput{
			{Email: "a@b.c", Message: "m"},
			{Name: "n", Message: "m"},
			{Name: "n", Email: "a@b.c"},
		} {
			mRepo := new(repoMocks.MockContactRepository)
			svc := NewContactService(mRepo)

			_, err := svc.Submit(ctx, in)

			assert.ErrorIs(t, err, ErrContactFieldsRequired)
			mRepo.AssertExpectations(t)
		}
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		svc := NewContactService(mRepo)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		_, err := svc.Submit(ctx, ContactInput{Name: "n", Email: "a@b.c", Message: "m"})
		assert.Error(t, err)
	})
}
