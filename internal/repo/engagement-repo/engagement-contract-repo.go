package engagement_repo

import (
	"context"

	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type EngagementRepoContract interface {
	// GetEngagement liefert (nil, nil), wenn noch kein Datensatz existiert.
	GetEngagement(ctx context.Context, employeeID string) (*entity.UserEngagement, *app_errors.AppError)
	UpsertEngagement(ctx context.Context, engagement *entity.UserEngagement) *app_errors.AppError
}
