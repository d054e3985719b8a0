package tx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type recordingTx struct {
	committed  bool
	rolledBack bool
}

func (r *recordingTx) Commit(context.Context) *app_errors.AppError {
	r.committed = true
	return nil
}

func (r *recordingTx) Rollback(context.Context) *app_errors.AppError {
	r.rolledBack = true
	return nil
}

type fakeManager struct {
	tx  *recordingTx
	err *app_errors.AppError
}

func (m *fakeManager) Begin(context.Context) (Tx, *app_errors.AppError) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tx, nil
}

func TestWithTx_Commits(t *testing.T) {
	m := &fakeManager{tx: &recordingTx{}}

	err := WithTx(context.Background(), m, func(Tx) *app_errors.AppError { return nil })

	assert.Nil(t, err)
	assert.True(t, m.tx.committed)
}

func TestWithTx_FnErrorRollsBack(t *testing.T) {
	m := &fakeManager{tx: &recordingTx{}}
	boom := app_errors.NotFound("task_not_found")

	err := WithTx(context.Background(), m, func(Tx) *app_errors.AppError { return boom })

	assert.Same(t, boom, err)
	assert.False(t, m.tx.committed)
	assert.True(t, m.tx.rolledBack)
}

func TestWithTx_BeginError(t *testing.T) {
	called := false
	m := &fakeManager{err: app_errors.Internal(assert.AnError)}

	err := WithTx(context.Background(), m, func(Tx) *app_errors.AppError {
		called = true
		return nil
	})

	assert.NotNil(t, err)
	assert.False(t, called)
}
