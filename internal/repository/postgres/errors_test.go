package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRowsError(t *testing.T) {
	assert.True(t, IsNoRowsError(sql.ErrNoRows))
	assert.True(t, IsNoRowsError(fmt.Errorf("find: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRowsError(errors.New("other")))
	assert.False(t, IsNoRowsError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "works_title_key"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.False(t, IsUniqueViolation(nil))
}
