package app_errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgxError_NoRows(t *testing.T) {
	err := MapPgxError(fmt.Errorf("scan: %w", pgx.ErrNoRows), "project_not_found")

	assert.Equal(t, 404, err.Code)
	assert.Equal(t, ErrNotFound, err.Type)
	assert.Equal(t, "project_not_found", err.MessageKey)
}

func TestMapPgxError_UniqueViolation(t *testing.T) {
	err := MapPgxError(&pgconn.PgError{Code: "23505"})

	assert.Equal(t, 409, err.Code)
	assert.Equal(t, ErrConflict, err.Type)
}

func TestMapPgxError_Fallback(t *testing.T) {
	cause := errors.New("connection reset")
	err := MapPgxError(cause)

	assert.Equal(t, 500, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestParseValidationError(t *testing.T) {
	type req struct {
		DueDate string `validate:"required"`
		Name    string `validate:"min=3"`
	}

	err := validator.New().Struct(req{Name: "ab"})
	details := ParseValidationError(err)

	assert.Len(t, details, 2)
	assert.Equal(t, "due_date", details[0].Field)
	assert.Equal(t, "validation.required", details[0].MessageKey)
	assert.Equal(t, "validation.min", details[1].MessageKey)
	assert.Equal(t, "3", details[1].Params["min"])
}

func TestPrefixFields(t *testing.T) {
	details := PrefixFields("assignees[1]", []FieldError{{Field: "status"}})
	assert.Equal(t, "assignees[1].status", details[0].Field)
}
