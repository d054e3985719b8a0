package task_repo

import (
	"context"

	"github.com/virtutask/virtutask-api/internal/abstraction/tx"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type TaskRepoContract interface {
	InsertTask(ctx context.Context, task *entity.Task) *app_errors.AppError
	GetTask(ctx context.Context, projectID, taskID string) (*entity.Task, *app_errors.AppError)
	ListTasksByProject(ctx context.Context, projectID string) ([]entity.Task, *app_errors.AppError)
	ListTasksForAccount(ctx context.Context, accountID string) ([]entity.Task, *app_errors.AppError)
	UpdateTask(ctx context.Context, task *entity.Task) *app_errors.AppError
	DeleteTask(ctx context.Context, tx tx.Tx, projectID, taskID string) *app_errors.AppError
}
