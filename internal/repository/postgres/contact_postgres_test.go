package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"studioapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestContactPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	cols := []string{
		"id", "name", "email", "phone", "country_code", "message",
		"preferred_date", "preferred_time", "created_at",
	}

	t.Run("success", func(t *testing.T) {
		c := &model.ContactSubmission{
			Name:    "Ada",
			Email:   "ada@example.com",
			Phone:   strPtr("5551234"),
			Message: "hello",
		}

		rows := sqlmock.NewRows(cols).AddRow(
			int64(1), c.Name, c.Email, "5551234", nil, c.Message, nil, nil, time.Now(),
		)

		mock.ExpectQuery("INSERT INTO contacts").
			WithArgs(c.Name, c.Email, "5551234", nil, c.Message, nil, nil).
			WillReturnRows(rows)

		out, err := repo.Create(ctx, c)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
		assert.Nil(t, out.CountryCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO contacts").
			WillReturnError(errors.New("insert fail"))

		out, err := repo.Create(ctx, &model.ContactSubmission{Name: "n", Email: "e", Message: "m"})

		assert.Error(t, err)
		assert.Nil(t, out)
	})
}
