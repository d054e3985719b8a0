package project_case

import (
	"context"

	project_dto "github.com/virtutask/virtutask-api/internal/dtos/project-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type ProjectServiceContract interface {
	CreateProject(ctx context.Context, userID string, req *project_dto.ProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	ListMyProjects(ctx context.Context, userID string) ([]*project_dto.ProjectResponse, *app_errors.AppError)
	GetProject(ctx context.Context, userID, projectID string) (*project_dto.ProjectResponse, *app_errors.AppError)
	UpdateProject(ctx context.Context, userID, projectID string, req *project_dto.ProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	DeleteProject(ctx context.Context, userID, projectID string) (*project_dto.DeletedProjectResponse, *app_errors.AppError)
}
