package user_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	user_dto "github.com/virtutask/virtutask-api/internal/dtos/user-dto"
	"github.com/virtutask/virtutask-api/internal/handlers"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	user_case "github.com/virtutask/virtutask-api/internal/use-cases/user-case"
)

type UserHandler struct {
	validator *validator.Validate
	service   user_case.UserServiceContract
	i18n      internal_i18n.Service
}

func NewUserHandler(service user_case.UserServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *UserHandler {
	return &UserHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

// SearchUsers: Suche mit dem Token des Aufrufers beim Credential-Verifier.
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	var q user_dto.SearchUsersQuery
	if err := handlers.ParseQuery(c, h.validator, &q); err != nil {
		return err
	}

	resp, err := h.service.SearchUsers(c.Context(), handlers.GetToken(c), q.Q)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_search_users", resp)
}
