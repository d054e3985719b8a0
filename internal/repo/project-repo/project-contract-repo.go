package project_repo

import (
	"context"

	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type ProjectRepoContract interface {
	InsertProject(ctx context.Context, project *entity.Project) *app_errors.AppError
	GetProjectByID(ctx context.Context, projectID string) (*entity.Project, *app_errors.AppError)
	ListProjectsForAccount(ctx context.Context, accountID string) ([]entity.Project, *app_errors.AppError)
	UpdateProject(ctx context.Context, project *entity.Project) *app_errors.AppError
	DeleteProject(ctx context.Context, projectID string) *app_errors.AppError
}
