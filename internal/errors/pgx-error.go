package app_errors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPgxError übersetzt Treiberfehler in AppErrors. notFoundKey wird genutzt, wenn keine Zeile gefunden wurde.
func MapPgxError(err error, notFoundKey ...string) *AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		key := "not_found"
		if len(notFoundKey) > 0 {
			key = notFoundKey[0]
		}
		return NewAppError(404, ErrNotFound, key, nil)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return NewAppError(409, ErrConflict, "conflict", err)
		case "23503": // foreign_key_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		}
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}
