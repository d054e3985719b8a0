package hub_case

import (
	"context"

	hub_dto "github.com/virtutask/virtutask-api/internal/dtos/hub-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type HubServiceContract interface {
	CheckStatus(ctx context.Context, employeeID string) (*hub_dto.HubStatusResponse, *app_errors.AppError)
	ToggleStatus(ctx context.Context, employeeID string, enabled bool) (*hub_dto.HubStatusResponse, *app_errors.AppError)
	RecordPlayTime(ctx context.Context, employeeID string, elapsedSeconds int64) (*hub_dto.HubStatusResponse, *app_errors.AppError)
}
