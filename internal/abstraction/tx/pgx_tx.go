package tx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type PgxTxManager struct {
	db *pgxpool.Pool
}

func NewPgxTxManager(db *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{db: db}
}

func (m *PgxTxManager) Begin(ctx context.Context) (Tx, *app_errors.AppError) {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, app_errors.Internal(err)
	}

	return &PgxTx{Tx: tx}, nil
}

// PgxTx wird von den Repositories per Typ-Assertion ausgepackt.
type PgxTx struct {
	Tx pgx.Tx
}

func (t *PgxTx) Commit(ctx context.Context) *app_errors.AppError {
	if err := t.Tx.Commit(ctx); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

// Rollback nach Commit ist ein No-op (pgx.ErrTxClosed wird ignoriert).
func (t *PgxTx) Rollback(ctx context.Context) *app_errors.AppError {
	_ = t.Tx.Rollback(ctx)
	return nil
}

// PgxFrom liefert die pgx-Transaktion hinter t.
func PgxFrom(t Tx) (pgx.Tx, *app_errors.AppError) {
	pt, ok := t.(*PgxTx)
	if !ok || pt.Tx == nil {
		return nil, app_errors.Internal(fmt.Errorf("unsupported transaction type %T", t))
	}
	return pt.Tx, nil
}
