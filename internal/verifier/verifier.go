package verifier

import (
	"context"

	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// Verifier ist der gemeinsame Vertrag für die Token-Prüfung aller Routengruppen.
//
// Verify liefert 401 für abgelehnte Tokens, 503 wenn der Dienst nicht
// erreichbar ist, und 500 wenn die Antwort keine Konto-ID enthält.
type Verifier interface {
	Verify(ctx context.Context, token string) (*entity.Account, *app_errors.AppError)
	SearchUsers(ctx context.Context, token, query string) ([]entity.Account, *app_errors.AppError)
}

func invalidToken(err error) *app_errors.AppError {
	return app_errors.NewAppError(401, app_errors.ErrUnauthorized, "auth.invalid_token", err)
}

func unavailable(err error) *app_errors.AppError {
	return app_errors.NewAppError(503, app_errors.ErrServiceUnavailable, "auth.verifier_unavailable", err)
}

func malformed(err error) *app_errors.AppError {
	return app_errors.NewAppError(500, app_errors.ErrInternal, "auth.verifier_malformed", err)
}
