package subtask_case

import (
	"context"

	subtask_dto "github.com/virtutask/virtutask-api/internal/dtos/subtask-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type SubtaskServiceContract interface {
	CreateSubtask(ctx context.Context, userID, projectID, taskID string, req *subtask_dto.CreateSubtaskRequest) (*subtask_dto.SubtaskResponse, *app_errors.AppError)
	ListMySubtasks(ctx context.Context, userID, projectID, taskID string) ([]*subtask_dto.SubtaskResponse, *app_errors.AppError)
	GetSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string) (*subtask_dto.SubtaskResponse, *app_errors.AppError)
	UpdateSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string, req *subtask_dto.UpdateSubtaskRequest) (*subtask_dto.SubtaskResponse, *app_errors.AppError)
	DeleteSubtask(ctx context.Context, userID, projectID, taskID, subtaskID string) (*subtask_dto.DeletedSubtaskResponse, *app_errors.AppError)
}
