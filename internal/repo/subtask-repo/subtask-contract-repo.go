package subtask_repo

import (
	"context"

	"github.com/virtutask/virtutask-api/internal/abstraction/tx"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type SubtaskRepoContract interface {
	InsertSubtask(ctx context.Context, subtask *entity.Subtask) *app_errors.AppError
	GetSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Subtask, *app_errors.AppError)
	ListSubtasksForAssignee(ctx context.Context, taskID, assigneeID string) ([]entity.Subtask, *app_errors.AppError)
	UpdateSubtaskText(ctx context.Context, subtaskID, text string) (*entity.Subtask, *app_errors.AppError)
	DeleteSubtask(ctx context.Context, subtaskID string) *app_errors.AppError
	DeleteSubtasksByTask(ctx context.Context, tx tx.Tx, taskID string) (int64, *app_errors.AppError)
	DeleteOrphanSubtasks(ctx context.Context) (int64, *app_errors.AppError)
}
