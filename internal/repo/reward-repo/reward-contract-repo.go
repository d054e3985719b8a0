package reward_repo

import (
	"context"

	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

type RewardRepoContract interface {
	InsertReward(ctx context.Context, reward *entity.Reward) *app_errors.AppError
	GetRewardByID(ctx context.Context, rewardID string) (*entity.Reward, *app_errors.AppError)
	ListRewards(ctx context.Context, filter entity.RewardFilter) ([]entity.Reward, *app_errors.AppError)
}
