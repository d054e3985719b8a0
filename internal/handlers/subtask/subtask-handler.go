package subtask_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	subtask_dto "github.com/virtutask/virtutask-api/internal/dtos/subtask-dto"
	"github.com/virtutask/virtutask-api/internal/handlers"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	subtask_case "github.com/virtutask/virtutask-api/internal/use-cases/subtask-case"
)

type SubtaskHandler struct {
	validator *validator.Validate
	service   subtask_case.SubtaskServiceContract
	i18n      internal_i18n.Service
}

func NewSubtaskHandler(service subtask_case.SubtaskServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *SubtaskHandler {
	return &SubtaskHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *SubtaskHandler) CreateSubtask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param subtask_dto.ParamSubtaskParent
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	var req subtask_dto.CreateSubtaskRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateSubtask(c.Context(), userID, param.ProjectID, param.TaskID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_create_subtask", resp)
}

func (h *SubtaskHandler) ListMySubtasks(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param subtask_dto.ParamSubtaskParent
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.ListMySubtasks(c.Context(), userID, param.ProjectID, param.TaskID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_subtasks", resp)
}

func (h *SubtaskHandler) GetSubtask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param subtask_dto.ParamSubtask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.GetSubtask(c.Context(), userID, param.ProjectID, param.TaskID, param.SubtaskID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_subtask", resp)
}

func (h *SubtaskHandler) UpdateSubtask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param subtask_dto.ParamSubtask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	var req subtask_dto.UpdateSubtaskRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateSubtask(c.Context(), userID, param.ProjectID, param.TaskID, param.SubtaskID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_update_subtask", resp)
}

func (h *SubtaskHandler) DeleteSubtask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param subtask_dto.ParamSubtask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.DeleteSubtask(c.Context(), userID, param.ProjectID, param.TaskID, param.SubtaskID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_delete_subtask", resp)
}
