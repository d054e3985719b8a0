package reward_case

import (
	"context"

	reward_dto "github.com/virtutask/virtutask-api/internal/dtos/reward-dto"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type RewardServiceContract interface {
	CreateGameReward(ctx context.Context, caller *entity.Account, req *reward_dto.CreateGameRequest) (*reward_dto.RewardResponse, *app_errors.AppError)
	// CreateMonthlyReward liefert (nil, nil), wenn der Durchschnitt keine Belohnung ergibt.
	CreateMonthlyReward(ctx context.Context, caller *entity.Account, req *reward_dto.CreateMonthlyRequest) (*reward_dto.RewardResponse, *app_errors.AppError)
	ListGameTime(ctx context.Context, employeeID, date string) ([]*reward_dto.RewardResponse, *app_errors.AppError)
	ListMonthly(ctx context.Context, employeeID, month string) ([]*reward_dto.RewardResponse, *app_errors.AppError)
	ListRewards(ctx context.Context, q *reward_dto.RewardFilterQuery) ([]*reward_dto.RewardResponse, *app_errors.AppError)
	GetReward(ctx context.Context, caller *entity.Account, rewardID string) (*reward_dto.RewardResponse, *app_errors.AppError)
}
