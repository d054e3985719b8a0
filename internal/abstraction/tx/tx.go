package tx

import (
	"context"

	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// Tx ist die Transaktion, die Repos als Parameter erhalten. Rollback nach Commit ist erlaubt.
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}

// WithTx führt fn in einer Transaktion aus. Commit nur, wenn fn ohne Fehler endet;
// sonst wird zurückgerollt.
func WithTx(ctx context.Context, m TxManager, fn func(t Tx) *app_errors.AppError) *app_errors.AppError {
	t, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer t.Rollback(ctx)

	if err := fn(t); err != nil {
		return err
	}
	return t.Commit(ctx)
}
