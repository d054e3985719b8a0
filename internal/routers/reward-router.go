package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtutask/virtutask-api/internal/entity"
	reward_handlers "github.com/virtutask/virtutask-api/internal/handlers/reward"
	"github.com/virtutask/virtutask-api/internal/middleware"
)

func RewardRouter(api fiber.Router, deps *Deps) {
	rewardHandler := reward_handlers.NewRewardHandler(deps.Rewards, deps.Validator, deps.I18n)

	api.Post("/createGame", rewardHandler.CreateGame)
	api.Post("/createMonthly", rewardHandler.CreateMonthly)
	api.Get("/game-time", rewardHandler.ListGameTime)
	api.Get("/monthly", rewardHandler.ListMonthly)
	api.Get("/rewards", middleware.RequireRoles(entity.RoleAdmin), rewardHandler.ListRewards)
	api.Get("/rewards/:reward_id", rewardHandler.GetReward)
}
