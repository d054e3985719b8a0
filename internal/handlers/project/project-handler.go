package project_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	project_dto "github.com/virtutask/virtutask-api/internal/dtos/project-dto"
	"github.com/virtutask/virtutask-api/internal/handlers"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	project_case "github.com/virtutask/virtutask-api/internal/use-cases/project-case"
)

type ProjectHandler struct {
	validator *validator.Validate
	service   project_case.ProjectServiceContract
	i18n      internal_i18n.Service
}

func NewProjectHandler(service project_case.ProjectServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *ProjectHandler {
	return &ProjectHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	// Body parsen, Aliasse übernehmen, validieren
	var req project_dto.ProjectRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateProject(c.Context(), userID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusCreated, "response.success_create_project", resp)
}

func (h *ProjectHandler) ListMyProjects(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ListMyProjects(c.Context(), userID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_list_projects", resp)
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param project_dto.ParamProjectID
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.GetProject(c.Context(), userID, param.ID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_get_project", resp)
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param project_dto.ParamProjectID
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	var req project_dto.ProjectRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateProject(c.Context(), userID, param.ID, &req)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_update_project", resp)
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var param project_dto.ParamProjectID
	if err := handlers.ParseParams(c, h.validator, &param); err != nil {
		return err
	}

	resp, err := h.service.DeleteProject(c.Context(), userID, param.ID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_delete_project", resp)
}
