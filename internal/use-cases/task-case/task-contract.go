package task_case

import (
	"context"
	"mime/multipart"

	task_dto "github.com/virtutask/virtutask-api/internal/dtos/task-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type TaskServiceContract interface {
	CreateTask(ctx context.Context, userID, projectID string, req *task_dto.TaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	ListProjectTasks(ctx context.Context, userID, projectID string) ([]*task_dto.TaskResponse, *app_errors.AppError)
	ListMyTasks(ctx context.Context, userID string) ([]*task_dto.TaskResponse, *app_errors.AppError)
	GetTask(ctx context.Context, userID, projectID, taskID string) (*task_dto.TaskResponse, *app_errors.AppError)
	UpdateTask(ctx context.Context, userID, projectID, taskID string, req *task_dto.TaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	DeleteTask(ctx context.Context, userID, projectID, taskID string) (*task_dto.DeletedTaskResponse, *app_errors.AppError)
	UpdateAssigneeStatus(ctx context.Context, userID, projectID, taskID, status string) (*task_dto.TaskResponse, *app_errors.AppError)

	UploadAttachment(ctx context.Context, userID, projectID, taskID string, file *multipart.FileHeader) (*entity.Attachment, *app_errors.AppError)
	ListAttachments(ctx context.Context, userID, projectID, taskID string) ([]entity.Attachment, *app_errors.AppError)
	GetAttachment(ctx context.Context, userID, projectID, taskID, attachmentID string) (*task_dto.AttachmentDownload, *app_errors.AppError)
	UpdateAttachment(ctx context.Context, userID, projectID, taskID, attachmentID string, file *multipart.FileHeader) (*entity.Attachment, *app_errors.AppError)
	DeleteAttachment(ctx context.Context, userID, projectID, taskID, attachmentID string) (*task_dto.AttachmentEvent, *app_errors.AppError)
}
