package hub_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	hub_dto "github.com/virtutask/virtutask-api/internal/dtos/hub-dto"
	"github.com/virtutask/virtutask-api/internal/handlers"
	internal_i18n "github.com/virtutask/virtutask-api/internal/i18n"
	hub_case "github.com/virtutask/virtutask-api/internal/use-cases/hub-case"
)

type HubHandler struct {
	validator *validator.Validate
	service   hub_case.HubServiceContract
	i18n      internal_i18n.Service
}

func NewHubHandler(service hub_case.HubServiceContract, validate *validator.Validate, i18n internal_i18n.Service) *HubHandler {
	return &HubHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *HubHandler) CheckStatus(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.CheckStatus(c.Context(), userID)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_hub_status", resp)
}

func (h *HubHandler) ToggleStatus(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var req hub_dto.ToggleRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.ToggleStatus(c.Context(), userID, *req.IsEnabled)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_hub_toggle", resp)
}

func (h *HubHandler) RecordPlayTime(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var req hub_dto.PlayTimeRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.RecordPlayTime(c.Context(), userID, *req.ElapsedSeconds)
	if err != nil {
		return err
	}

	return handlers.Respond(c, h.i18n, fiber.StatusOK, "response.success_hub_play_time", resp)
}
