package task_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	project_dto "github.com/virtutask/virtutask-api/internal/dtos/project-dto"
	task_dto "github.com/virtutask/virtutask-api/internal/dtos/task-dto"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/handlers"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	task_case "github.com/virtutask/virtutask-api/internal/use-cases/task-case"
)

type TaskHandler struct {
	validator *validator.Validate
	service   task_case.TaskServiceContract
	i18n      internal_i18n.Service
}

func NewTaskHandler(service task_case.TaskServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *TaskHandler {
	return &TaskHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param project_dto.ParamProjectID
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	req, err := h.parseTaskRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.service.CreateTask(c.Context(), userID, param.ID, req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_create_task", resp)
}

func (h *TaskHandler) ListProjectTasks(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param project_dto.ParamProjectID
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.ListProjectTasks(c.Context(), userID, param.ID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_tasks", resp)
}

func (h *TaskHandler) ListMyTasks(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ListMyTasks(c.Context(), userID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_tasks", resp)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamTask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.GetTask(c.Context(), userID, param.ProjectID, param.TaskID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_task", resp)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamTask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	req, err := h.parseTaskRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UpdateTask(c.Context(), userID, param.ProjectID, param.TaskID, req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_update_task", resp)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamTask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.DeleteTask(c.Context(), userID, param.ProjectID, param.TaskID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_delete_task", resp)
}

func (h *TaskHandler) UpdateAssigneeStatus(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param task_dto.ParamTask
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	var req task_dto.AssigneeStatusRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateAssigneeStatus(c.Context(), userID, param.ProjectID, param.TaskID, req.Status)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_update_assignee_status", resp)
}

// parseTaskRequest validiert erst den Body, dann jeden Assignee einzeln.
func (h *TaskHandler) parseTaskRequest(c *fiber.Ctx) (*task_dto.TaskRequest, *app_errors.AppError) {
	var req task_dto.TaskRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return nil, err
	}
	if err := task_dto.ValidateAssignees(h.validator, req.Assignees); err != nil {
		return nil, err
	}
	return &req, nil
}
