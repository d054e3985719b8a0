package reward_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	reward_dto "github.com/virtutask/virtutask-api/internal/dtos/reward-dto"
	"github.com/virtutask/virtutask-api/internal/handlers"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	reward_case "github.com/virtutask/virtutask-api/internal/use-cases/reward-case"
)

type RewardHandler struct {
	validator *validator.Validate
	service   reward_case.RewardServiceContract
	i18n      internal_i18n.Service
}

func NewRewardHandler(service reward_case.RewardServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *RewardHandler {
	return &RewardHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *RewardHandler) CreateGame(c *fiber.Ctx) error {
	account, err := handlers.GetAccount(c)
	if err != nil {
		return err
	}

	var req reward_dto.CreateGameRequest
	if len(c.Body()) > 0 {
		if err := handlers.ParseBody(c, h.validator, &req); err != nil {
			return err
		}
	}

	resp, err := h.service.CreateGameReward(c.Context(), account, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_create_reward", resp)
}

// CreateMonthly antwortet mit 200 und data null, wenn keine Belohnung erreicht wurde.
func (h *RewardHandler) CreateMonthly(c *fiber.Ctx) error {
	account, err := handlers.GetAccount(c)
	if err != nil {
		return err
	}

	var req reward_dto.CreateMonthlyRequest
	if len(c.Body()) > 0 {
		if err := handlers.ParseBody(c, h.validator, &req); err != nil {
			return err
		}
	}

	resp, err := h.service.CreateMonthlyReward(c.Context(), account, &req)
	if err != nil {
		return err
	}
	if resp == nil {
		return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.reward_none_earned", resp)
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_create_reward", resp)
}

func (h *RewardHandler) ListGameTime(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var q reward_dto.GameTimeQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.ListGameTime(c.Context(), userID, q.Date)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_rewards", resp)
}

func (h *RewardHandler) ListMonthly(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var q reward_dto.MonthlyQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.ListMonthly(c.Context(), userID, q.Month)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_rewards", resp)
}

func (h *RewardHandler) ListRewards(c *fiber.Ctx) error {
	var q reward_dto.RewardFilterQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.ListRewards(c.Context(), &q)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_rewards", resp)
}

func (h *RewardHandler) GetReward(c *fiber.Ctx) error {
	account, err := handlers.GetAccount(c)
	if err != nil {
		return err
	}

	var param reward_dto.ParamRewardID
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.GetReward(c.Context(), account, param.ID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_reward", resp)
}
